// Package main evaluates a structured dice roll request from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/louisbranch/dicetrace/internal/cmd/roll"
	entrypoint "github.com/louisbranch/dicetrace/internal/platform/cmd"
	"github.com/louisbranch/dicetrace/internal/platform/config"
)

func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	options := entrypoint.RunOptions{Logger: log.New(os.Stderr, "[ROLL] ", 0)}
	err = entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceRoll, options, func(ctx context.Context) error {
		return rollcmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	})
	stop()
	if err != nil {
		config.Fail(os.Stderr, "roll: %v", err)
		os.Exit(rollcmd.ExitCode(err))
	}
}
