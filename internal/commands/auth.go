package commands

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/service"
)

func init() {
	Register(&AuthCmd{})
	Register(&LogoutCmd{})
}

// AuthCmd stores a Linear API token.
type AuthCmd struct{}

func (c *AuthCmd) Name() string      { return "auth" }
func (c *AuthCmd) Aliases() []string { return []string{"login"} }
func (c *AuthCmd) Synopsis() string  { return "Authenticate with Linear using a personal access token" }
func (c *AuthCmd) Usage() string     { return "linear auth [common flags] <token>" }
func (c *AuthCmd) NeedsAuth() bool   { return false }

func (c *AuthCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *AuthCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		return fail(errOut, checkArgs(args, []string{"token"}, 0))
	}
	token := strings.TrimSpace(optionalArg(args, 0))
	if token == "" {
		return fail(errOut, service.InvalidInputf("Token is required. Usage: linear auth <token>"))
	}

	if err := cfg.Store.SetToken(token); err != nil {
		return fail(errOut, errors.Wrap(err, "failed to save token"))
	}
	cfg.Logger.Debug("token stored", "path", cfg.Store.Path())

	info(cfg, out, "Successfully authenticated with Linear!")
	return exitcode.Success
}

// LogoutCmd removes the stored token.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove the stored token" }
func (c *LogoutCmd) Usage() string     { return "linear logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, nil, 0); err != nil {
		return fail(errOut, err)
	}
	if !cfg.Store.HasToken() {
		info(cfg, out, "Not logged in.")
		return exitcode.Success
	}

	if err := cfg.Store.DeleteToken(); err != nil {
		return fail(errOut, errors.Wrap(err, "failed to remove token"))
	}

	info(cfg, out, "Logged out.")
	return exitcode.Success
}
