package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"enigma/internal/app"
	"enigma/internal/config"
)

func main() {
	cfg, err := config.ParseConfig(config.NewFlagSet("enigma"), os.Args[1:])
	if err != nil {
		code := app.ExitCode(err)
		if code != 0 {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = 2
		}
		os.Exit(code)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	stop()

	code := app.ExitCode(err)
	if code == 1 || code == 2 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
