package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "linear help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText)
	return exitcode.Success
}

// HelpText is the top-level usage summary.
const HelpText = `Usage:
  linear auth <token>                                Store a Linear API token
  linear logout                                      Remove the stored token
  linear search <query>                              Search projects, issues and documents
  linear status list                                 List task and project statuses
  linear status set <id> <status>                    Set status for a task or project
  linear project list
  linear project show <id>
  linear project create <name> [teamId]
  linear project update <id> <name>
  linear project delete <id>
  linear project search <query>
  linear task list [-p <projectId>]
  linear task show <id>
  linear task create <title> [teamId] [-p <projectId>] [-d <description>]
  linear task update <id> [-t <title>] [-d <description>]
  linear task delete <id>
  linear doc list [-p <projectId>]
  linear doc show <id>
  linear doc create <title> <projectId> [-c <content> | --create-from-file <path>]
  linear doc update <id> [-t <title>] [-c <content>]
  linear doc delete <id>
  linear team set-default <id>
  linear team list
  linear help
  linear version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
