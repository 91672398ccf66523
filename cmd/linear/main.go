// Package main is the entry point for the linear CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"linearcli/internal/backend/linear"
	"linearcli/internal/cli"
	"linearcli/internal/commands"
	"linearcli/internal/config"
	"linearcli/internal/service"
)

func main() {
	// Cancel in-flight requests on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return linear.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
