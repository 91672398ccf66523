// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"linearcli/internal/commands"
	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, []string{"help"}, out, errOut)
	}

	switch args[0] {
	case "-h", "--help":
		return d.dispatch(ctx, []string{"help"}, out, errOut)
	case "-V", "--version":
		return d.dispatch(ctx, []string{"version"}, out, errOut)
	}

	// Flags require a command
	if strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(errOut, "Error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}

	return d.dispatch(ctx, args, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd, rest, ok := d.registry.Lookup(args)
	if ok {
		return d.dispatchCommand(ctx, cmd, rest, out, errOut)
	}

	// "linear project" or "linear project bogus": show the group's verbs.
	if group := d.registry.Group(args[0]); len(group) > 0 {
		if len(args) > 1 && isHelpFlag(args[1]) {
			printGroupUsage(out, args[0], group)
			return exitcode.Success
		}
		if len(args) > 1 {
			fmt.Fprintf(errOut, "Error: unknown command: %s %s\n", args[0], args[1])
		}
		printGroupUsage(errOut, args[0], group)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "Error: unknown command: %s\n", args[0])
	return exitcode.UserError
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	fs.Usage = func() {}

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "Override config directory")
	fs.BoolVar(&quiet, "quiet", false, "Suppress informational output")
	fs.BoolVar(&debug, "debug", false, "Print debug logs to stderr")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(out, cmd, fs)
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "Error: %s\n", err)
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.Logger = config.NewLogger(errOut, debug)
	cfg.Logger.Debug("dispatch", "command", cmd.Name(), "config", cfg.Path())

	var svc service.Service
	if cmd.NeedsAuth() {
		if !cfg.Store.HasToken() {
			fmt.Fprintf(errOut, "Error: %s\n", service.NotAuthenticatedMessage)
			return exitcode.AuthError
		}
		if d.factory == nil {
			fmt.Fprintln(errOut, "Error: no backend configured")
			return exitcode.BackendError
		}
		svc, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %s\n", err)
			return exitcode.For(err)
		}
	}

	return cmd.Run(ctx, cfg, svc, fs.Args(), out, errOut)
}

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help"
}

func printUsage(w io.Writer, cmd commands.Command, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s\n\n%s\n", cmd.Usage(), cmd.Synopsis())
	if flags := fs.FlagUsages(); flags != "" {
		fmt.Fprintf(w, "\nFlags:\n%s", flags)
	}
}

func printGroupUsage(w io.Writer, group string, cmds []commands.Command) {
	fmt.Fprintf(w, "Usage: linear %s <command>\n\nCommands:\n", group)
	for _, c := range cmds {
		sub := strings.TrimPrefix(c.Name(), group+" ")
		fmt.Fprintf(w, "  %-12s %s\n", sub, c.Synopsis())
	}
}
