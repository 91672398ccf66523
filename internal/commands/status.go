package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/output"
	"linearcli/internal/service"
)

func init() {
	Register(&StatusListCmd{})
	Register(&StatusSetCmd{})
}

// StatusListCmd lists workflow states and project statuses.
type StatusListCmd struct{}

func (c *StatusListCmd) Name() string      { return "status list" }
func (c *StatusListCmd) Aliases() []string { return []string{"statuses"} }
func (c *StatusListCmd) Synopsis() string  { return "List all task and project statuses" }
func (c *StatusListCmd) Usage() string     { return "linear status list [common flags]" }
func (c *StatusListCmd) NeedsAuth() bool   { return true }

func (c *StatusListCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *StatusListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, nil, 0); err != nil {
		return fail(errOut, err)
	}

	var (
		states   []service.WorkflowState
		statuses []service.ProjectStatus
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		states, err = svc.ListWorkflowStates(gctx)
		return err
	})
	g.Go(func() (err error) {
		statuses, err = svc.ListProjectStatuses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fail(errOut, err)
	}

	output.SectionHeader(out, "Task Statuses")
	if len(states) == 0 {
		fmt.Fprintln(out, "No task statuses found.")
	}
	for _, s := range states {
		output.FormatRef(out, s.ID, s.Name)
	}

	output.SectionHeader(out, "Project Statuses")
	if len(statuses) == 0 {
		fmt.Fprintln(out, "No project statuses found.")
	}
	for _, s := range statuses {
		output.FormatRef(out, s.ID, s.Name)
	}
	return exitcode.Success
}

// StatusSetCmd sets the status of a task or project.
type StatusSetCmd struct{}

func (c *StatusSetCmd) Name() string      { return "status set" }
func (c *StatusSetCmd) Aliases() []string { return nil }
func (c *StatusSetCmd) Synopsis() string  { return "Set status for a task or project" }
func (c *StatusSetCmd) Usage() string     { return "linear status set [common flags] <id> <status>" }
func (c *StatusSetCmd) NeedsAuth() bool   { return true }

func (c *StatusSetCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *StatusSetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id", "status"}, 0); err != nil {
		return fail(errOut, err)
	}
	id := args[0]

	kind, err := SetStatus(ctx, svc, id, args[1])
	if err != nil {
		return fail(errOut, err)
	}
	cfg.Logger.Debug("status set", "kind", kind, "id", id)

	info(cfg, out, "Status updated successfully for %s %s.", kind, id)
	return exitcode.Success
}
