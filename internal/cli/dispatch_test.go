package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linearcli/internal/cli"
	"linearcli/internal/commands"
	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/service"
	"linearcli/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

// setup clears env overrides and returns a config dir, optionally holding a token.
func setup(t *testing.T, token string) string {
	t.Helper()
	t.Setenv("LINEAR_API_KEY", "")
	t.Setenv("LINEAR_DEFAULT_TEAM_ID", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	if token != "" {
		cfg, err := config.New(dir)
		require.NoError(t, err)
		require.NoError(t, cfg.Store.SetToken(token))
	}
	return dir
}

func run(d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	_, stderr, code := run(d, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "Error: unknown command: unknowncmd\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	_, stderr, code := run(d, "--quiet")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "Error: unknown command: --quiet\n", stderr)
}

func TestDispatcher_NoArgsPrintsHelp(t *testing.T) {
	dir := setup(t, "")
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(d)
	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Usage:")

	stdout, _, code = run(d, "help", "--config", dir)
	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stdout, "linear team set-default <id>")
}

func TestDispatcher_Version(t *testing.T) {
	setup(t, "")
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	for _, args := range [][]string{{"version"}, {"--version"}} {
		stdout, stderr, code := run(d, args...)
		assert.Equal(t, exitcode.Success, code)
		assert.Empty(t, stderr)
		assert.Equal(t, "linear 1.0.0\n", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(d, "help", "--unknown")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "Error: unknown flag: --unknown\n", stderr)
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dir := setup(t, "tok")
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	_, stderr, code := run(d, "task", "list", "--config", dir, "--project")

	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, stderr, "flag needs an argument")
}

func TestDispatcher_CommandHelp(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, _, code := run(d, "doc", "create", "-h")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stdout, "Usage: linear doc create")
	assert.Contains(t, stdout, "--create-from-file")
}

func TestDispatcher_GroupUsage(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(d, "project")
	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, stderr, "Usage: linear project <command>")
	assert.Contains(t, stderr, "search")

	_, stderr, code = run(d, "project", "frobnicate")
	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, stderr, "Error: unknown command: project frobnicate\n")

	stdout, _, code := run(d, "task", "--help")
	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stdout, "Usage: linear task <command>")
}

func TestDispatcher_NotAuthenticatedMakesNoCalls(t *testing.T) {
	dir := setup(t, "")
	tests := [][]string{
		{"project", "list"},
		{"task", "create", "T", "ENG"},
		{"doc", "show", "d1"},
		{"search", "q"},
		{"status", "set", "ABC-1", "Done"},
		{"team", "list"},
	}
	for _, args := range tests {
		svc := testutil.NewFakeService()
		factoryCalled := false
		d := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
			factoryCalled = true
			return svc, nil
		})

		stdout, stderr, code := run(d, append(args, "--config", dir)...)

		assert.Equal(t, exitcode.AuthError, code, args)
		assert.Empty(t, stdout, args)
		assert.Equal(t, "Error: Not authenticated. Please run \"linear auth <token>\" first.\n", stderr, args)
		assert.False(t, factoryCalled, args)
		assert.Empty(t, svc.Calls(), args)
	}
}

func TestDispatcher_AuthThenList(t *testing.T) {
	dir := setup(t, "")
	svc := testutil.NewFakeService()
	svc.AddProject(service.Project{ID: "p1", Name: "Apollo", SlugID: "apollo"})
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	stdout, _, code := run(d, "auth", "lin_api_x", "--config", dir)
	require.Equal(t, exitcode.Success, code)
	assert.Equal(t, "Successfully authenticated with Linear!\n", stdout)

	stdout, stderr, code := run(d, "project", "list", "--config", dir)
	assert.Equal(t, exitcode.Success, code, stderr)
	assert.Equal(t, "Projects:\n- Apollo (p1) [apollo]\n", stdout)
}

func TestDispatcher_EnvTokenSatisfiesAuthGate(t *testing.T) {
	dir := setup(t, "")
	t.Setenv("LINEAR_API_KEY", "lin_api_env")
	var seen string
	d := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		seen = cfg.Store.Token()
		return testutil.NewFakeService(), nil
	})

	_, _, code := run(d, "task", "list", "--config", dir)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "lin_api_env", seen)
}

func TestDispatcher_FactoryError(t *testing.T) {
	dir := setup(t, "tok")
	d := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, service.Unauthenticated()
	})

	_, stderr, code := run(d, "project", "list", "--config", dir)

	assert.Equal(t, exitcode.AuthError, code)
	assert.Contains(t, stderr, "Not authenticated")
}

func TestDispatcher_TeamSetDefaultNeedsNoToken(t *testing.T) {
	dir := setup(t, "")
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, _, code := run(d, "team", "set-default", "ENG", "--config", dir)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "Default team ID set to: ENG\n", stdout)
}

func TestDispatcher_QuietSuppressesConfirmations(t *testing.T) {
	dir := setup(t, "tok")
	svc := testutil.NewFakeService()
	svc.AddDocument(service.Document{ID: "d1", Title: "Roadmap"})
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	stdout, _, code := run(d, "doc", "update", "d1", "-t", "New", "--quiet", "--config", dir)
	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)

	stdout, _, code = run(d, "doc", "create", "Notes", "p1", "--quiet", "--config", dir)
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "Document \"Notes\" created successfully with ID doc-1\n", stdout)
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	setup(t, "")
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(d, "version", "--debug")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "dispatch")
	assert.Contains(t, stderr, "command=version")
}
