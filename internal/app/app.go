// Package app runs the enigma command: it builds a machine from the
// configuration and enciphers stdin onto stdout.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/text/transform"

	"enigma/internal/config"
	"enigma/internal/machine"
)

// NewLogger returns the stderr logger used by the command.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Prefix: "enigma", Level: level})
}

// ErrConfig marks errors in the machine settings, as opposed to I/O failures.
var ErrConfig = errors.New("invalid configuration")

// Run enciphers in onto out with the configured machine. Output is flushed
// a line at a time; a cancelled ctx stops Run even while it waits on input.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := NewLogger(errOut, cfg.Verbose)

	mc, err := cfg.MachineConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	m, err := machine.New(mc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	logger.Debug("machine ready",
		"rotors", rotorNames(m),
		"notches", notches(m),
		"reflector", reflectorName(mc.Reflector),
		"window", m.Window(),
		"rings", mc.RingSettings,
		"plugboard", m.Plugboard().String(),
	)

	n, err := process(ctx, m, in, out)
	logger.Debug("done", "bytes", n, "window", m.Window())
	if isBrokenPipe(err) {
		logger.Debug("output closed early")
		return nil
	}
	return err
}

func process(ctx context.Context, m *machine.Machine, in io.Reader, out io.Writer) (int64, error) {
	r := bufio.NewReader(transform.NewReader(newCtxReader(ctx, in), m))
	w := bufio.NewWriter(out)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		line, rerr := r.ReadBytes('\n')
		if len(line) > 0 {
			if _, err := w.Write(line); err != nil {
				return total, fmt.Errorf("error writing output: %w", err)
			}
			total += int64(len(line))
			if line[len(line)-1] == '\n' {
				if err := w.Flush(); err != nil {
					return total, fmt.Errorf("error writing output: %w", err)
				}
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			return total, fmt.Errorf("error reading input: %w", rerr)
		}
	}
	if err := w.Flush(); err != nil {
		return total, fmt.Errorf("error writing output: %w", err)
	}
	return total, nil
}

func rotorNames(m *machine.Machine) []string {
	names := make([]string, 3)
	for i := range names {
		names[i] = m.Rotor(i).Name()
	}
	return names
}

func notches(m *machine.Machine) string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = m.Rotor(i).Notch()
	}
	return string(b)
}

func reflectorName(name string) string {
	if name == "" {
		return machine.DefaultReflector
	}
	return name
}
