package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/output"
	"linearcli/internal/service"
)

func init() {
	Register(&TeamSetDefaultCmd{})
	Register(&TeamListCmd{})
}

// TeamSetDefaultCmd stores the team used by create commands.
type TeamSetDefaultCmd struct{}

func (c *TeamSetDefaultCmd) Name() string      { return "team set-default" }
func (c *TeamSetDefaultCmd) Aliases() []string { return nil }
func (c *TeamSetDefaultCmd) Synopsis() string  { return "Set a default team ID for create commands" }
func (c *TeamSetDefaultCmd) Usage() string     { return "linear team set-default [common flags] <id>" }
func (c *TeamSetDefaultCmd) NeedsAuth() bool   { return false }

func (c *TeamSetDefaultCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *TeamSetDefaultCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	id := strings.TrimSpace(args[0])
	if id == "" {
		return fail(errOut, service.InvalidInputf("team ID must not be empty"))
	}

	if err := cfg.Store.SetDefaultTeam(id); err != nil {
		return fail(errOut, errors.Wrap(err, "failed to save default team"))
	}

	info(cfg, out, "Default team ID set to: %s", id)
	return exitcode.Success
}

// TeamListCmd lists the teams visible to the token.
type TeamListCmd struct{}

func (c *TeamListCmd) Name() string      { return "team list" }
func (c *TeamListCmd) Aliases() []string { return []string{"teams"} }
func (c *TeamListCmd) Synopsis() string  { return "List teams" }
func (c *TeamListCmd) Usage() string     { return "linear team list [common flags]" }
func (c *TeamListCmd) NeedsAuth() bool   { return true }

func (c *TeamListCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *TeamListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, nil, 0); err != nil {
		return fail(errOut, err)
	}
	teams, err := svc.ListTeams(ctx)
	if err != nil {
		return fail(errOut, err)
	}
	if len(teams) == 0 {
		fmt.Fprintln(out, "No teams found.")
		return exitcode.Success
	}

	def := cfg.Store.DefaultTeam()
	fmt.Fprintln(out, "Teams:")
	for _, t := range teams {
		output.FormatTeam(out, t, t.ID == def || strings.EqualFold(t.Key, def))
	}
	return exitcode.Success
}
