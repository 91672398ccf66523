package commands

import (
	"fmt"
	"io"
	"strings"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/service"
)

// teamRequiredMessage is reported by create commands with no team anywhere.
const teamRequiredMessage = `Team ID is required. Either provide it as an argument or set a default using "linear team set-default <id>".`

// fail prints err as a single "Error: " line and returns its exit code.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "Error: %s\n", err)
	return exitcode.For(err)
}

// info prints a confirmation line unless --quiet is set.
func info(cfg *config.Config, out io.Writer, format string, args ...interface{}) {
	if cfg.Quiet {
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}

// checkArgs validates positional arguments against the required names and
// the number of optional ones allowed.
func checkArgs(args []string, required []string, optional int) error {
	if len(args) < len(required) {
		return service.InvalidInputf("missing required argument '%s'", required[len(args)])
	}
	if limit := len(required) + optional; len(args) > limit {
		return service.InvalidInputf("too many arguments. Expected %d %s but got %d.",
			limit, plural(limit, "argument"), len(args))
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// optionalArg returns args[i], or "" when absent.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// resolveTeam picks the explicit team or the stored default.
func resolveTeam(cfg *config.Config, explicit string) (string, error) {
	team := strings.TrimSpace(explicit)
	if team == "" {
		team = cfg.Store.DefaultTeam()
	}
	if team == "" {
		return "", service.InvalidInputf("%s", teamRequiredMessage)
	}
	return team, nil
}
