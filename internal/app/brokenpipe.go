package app

import (
	"errors"
	"io"
	"syscall"
)

// isBrokenPipe reports whether writing ciphertext failed because the
// reader of stdout went away, e.g. `enigma < msg.txt | head -c 50`.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
