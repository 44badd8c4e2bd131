package app

import (
	"context"
	"errors"
	"flag"
)

// ExitCode maps the outcome of parsing and running to the process status:
// 0 ok or -h, 2 bad usage or settings, 130 interrupted, 1 anything else.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, ErrConfig):
		return 2
	default:
		return 1
	}
}
