package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/output"
	"linearcli/internal/service"
)

func init() {
	Register(&ProjectListCmd{})
	Register(&ProjectShowCmd{})
	Register(&ProjectCreateCmd{})
	Register(&ProjectUpdateCmd{})
	Register(&ProjectDeleteCmd{})
	Register(&ProjectSearchCmd{})
}

// ProjectListCmd lists all projects.
type ProjectListCmd struct{}

func (c *ProjectListCmd) Name() string      { return "project list" }
func (c *ProjectListCmd) Aliases() []string { return []string{"projects"} }
func (c *ProjectListCmd) Synopsis() string  { return "List all projects" }
func (c *ProjectListCmd) Usage() string     { return "linear project list [common flags]" }
func (c *ProjectListCmd) NeedsAuth() bool   { return true }

func (c *ProjectListCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, nil, 0); err != nil {
		return fail(errOut, err)
	}
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		return fail(errOut, err)
	}
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found.")
		return exitcode.Success
	}

	fmt.Fprintln(out, "Projects:")
	for _, p := range projects {
		output.FormatProject(out, p)
	}
	return exitcode.Success
}

// ProjectShowCmd prints one project.
type ProjectShowCmd struct{}

func (c *ProjectShowCmd) Name() string      { return "project show" }
func (c *ProjectShowCmd) Aliases() []string { return nil }
func (c *ProjectShowCmd) Synopsis() string  { return "Show project details" }
func (c *ProjectShowCmd) Usage() string     { return "linear project show [common flags] <id>" }
func (c *ProjectShowCmd) NeedsAuth() bool   { return true }

func (c *ProjectShowCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	id := args[0]
	project, err := svc.GetProject(ctx, id)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return fail(errOut, err)
	}
	if project == nil {
		return fail(errOut, service.NotFoundf("Project with ID \"%s\" not found.", id))
	}

	output.FormatProjectDetail(out, *project)
	return exitcode.Success
}

// ProjectCreateCmd creates a project in a team.
type ProjectCreateCmd struct{}

func (c *ProjectCreateCmd) Name() string      { return "project create" }
func (c *ProjectCreateCmd) Aliases() []string { return nil }
func (c *ProjectCreateCmd) Synopsis() string  { return "Create a new project" }
func (c *ProjectCreateCmd) Usage() string {
	return "linear project create [common flags] <name> [teamId]"
}
func (c *ProjectCreateCmd) NeedsAuth() bool { return true }

func (c *ProjectCreateCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectCreateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"name"}, 1); err != nil {
		return fail(errOut, err)
	}
	team, err := resolveTeam(cfg, optionalArg(args, 1))
	if err != nil {
		return fail(errOut, err)
	}

	teamID, err := svc.ResolveTeamID(ctx, team)
	if err != nil {
		return fail(errOut, err)
	}
	project, err := svc.CreateProject(ctx, service.ProjectCreateInput{
		Name:    args[0],
		TeamIDs: []string{teamID},
	})
	if err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintf(out, "Project \"%s\" created successfully with ID %s [%s]\n", project.Name, project.ID, project.SlugID)
	return exitcode.Success
}

// ProjectUpdateCmd renames a project.
type ProjectUpdateCmd struct{}

func (c *ProjectUpdateCmd) Name() string      { return "project update" }
func (c *ProjectUpdateCmd) Aliases() []string { return nil }
func (c *ProjectUpdateCmd) Synopsis() string  { return "Update a project" }
func (c *ProjectUpdateCmd) Usage() string     { return "linear project update [common flags] <id> <name>" }
func (c *ProjectUpdateCmd) NeedsAuth() bool   { return true }

func (c *ProjectUpdateCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectUpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id", "name"}, 0); err != nil {
		return fail(errOut, err)
	}
	project, err := svc.UpdateProject(ctx, args[0], service.ProjectUpdateInput{Name: service.String(args[1])})
	if err != nil {
		return fail(errOut, err)
	}

	info(cfg, out, "Project \"%s\" updated successfully.", project.Name)
	return exitcode.Success
}

// ProjectDeleteCmd archives a project.
type ProjectDeleteCmd struct{}

func (c *ProjectDeleteCmd) Name() string      { return "project delete" }
func (c *ProjectDeleteCmd) Aliases() []string { return []string{"project rm"} }
func (c *ProjectDeleteCmd) Synopsis() string  { return "Delete a project" }
func (c *ProjectDeleteCmd) Usage() string     { return "linear project delete [common flags] <id>" }
func (c *ProjectDeleteCmd) NeedsAuth() bool   { return true }

func (c *ProjectDeleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectDeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	if err := svc.ArchiveProject(ctx, args[0]); err != nil {
		return fail(errOut, err)
	}

	info(cfg, out, "Project with ID \"%s\" deleted successfully.", args[0])
	return exitcode.Success
}

// ProjectSearchCmd finds projects by name.
type ProjectSearchCmd struct{}

func (c *ProjectSearchCmd) Name() string      { return "project search" }
func (c *ProjectSearchCmd) Aliases() []string { return nil }
func (c *ProjectSearchCmd) Synopsis() string  { return "Search projects by name" }
func (c *ProjectSearchCmd) Usage() string     { return "linear project search [common flags] <query>" }
func (c *ProjectSearchCmd) NeedsAuth() bool   { return true }

func (c *ProjectSearchCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectSearchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"query"}, 0); err != nil {
		return fail(errOut, err)
	}
	query := args[0]
	projects, err := svc.SearchProjects(ctx, query)
	if err != nil {
		return fail(errOut, err)
	}
	if len(projects) == 0 {
		fmt.Fprintf(out, "No projects found matching \"%s\".\n", query)
		return exitcode.Success
	}

	fmt.Fprintf(out, "Projects matching \"%s\":\n", query)
	for _, p := range projects {
		output.FormatProject(out, p)
	}
	return exitcode.Success
}
