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
	Register(&TaskListCmd{})
	Register(&TaskShowCmd{})
	Register(&TaskCreateCmd{})
	Register(&TaskUpdateCmd{})
	Register(&TaskDeleteCmd{})
}

// TaskListCmd lists tasks, optionally scoped to a project.
type TaskListCmd struct {
	project string
}

func (c *TaskListCmd) Name() string      { return "task list" }
func (c *TaskListCmd) Aliases() []string { return []string{"tasks"} }
func (c *TaskListCmd) Synopsis() string  { return "List all tasks" }
func (c *TaskListCmd) Usage() string     { return "linear task list [common flags] [-p <projectId>]" }
func (c *TaskListCmd) NeedsAuth() bool   { return true }

func (c *TaskListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.project, "project", "p", "", "Filter tasks by project ID")
}

func (c *TaskListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, nil, 0); err != nil {
		return fail(errOut, err)
	}
	tasks, err := svc.ListTasks(ctx, service.TaskFilter{ProjectID: c.project})
	if err != nil {
		return fail(errOut, err)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return exitcode.Success
	}

	fmt.Fprintln(out, "Tasks:")
	for _, t := range tasks {
		output.FormatTask(out, t)
	}
	return exitcode.Success
}

// TaskShowCmd prints one task.
type TaskShowCmd struct{}

func (c *TaskShowCmd) Name() string      { return "task show" }
func (c *TaskShowCmd) Aliases() []string { return nil }
func (c *TaskShowCmd) Synopsis() string  { return "Show task details" }
func (c *TaskShowCmd) Usage() string     { return "linear task show [common flags] <id>" }
func (c *TaskShowCmd) NeedsAuth() bool   { return true }

func (c *TaskShowCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *TaskShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	id := args[0]
	task, err := svc.GetTask(ctx, id)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return fail(errOut, err)
	}
	if task == nil {
		return fail(errOut, service.NotFoundf("Task with ID \"%s\" not found.", id))
	}

	output.FormatTaskDetail(out, *task)
	return exitcode.Success
}

// TaskCreateCmd creates an issue in a team.
type TaskCreateCmd struct {
	project     string
	description string
}

func (c *TaskCreateCmd) Name() string      { return "task create" }
func (c *TaskCreateCmd) Aliases() []string { return []string{"task add"} }
func (c *TaskCreateCmd) Synopsis() string  { return "Create a new task" }
func (c *TaskCreateCmd) Usage() string {
	return "linear task create [common flags] [-p <projectId>] [-d <description>] <title> [teamId]"
}
func (c *TaskCreateCmd) NeedsAuth() bool { return true }

func (c *TaskCreateCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.project, "project", "p", "", "Project ID")
	fs.StringVarP(&c.description, "description", "d", "", "Task description")
}

func (c *TaskCreateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"title"}, 1); err != nil {
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
	task, err := svc.CreateTask(ctx, service.TaskCreateInput{
		Title:       args[0],
		TeamID:      teamID,
		ProjectID:   c.project,
		Description: c.description,
	})
	if err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintf(out, "Task [%s] \"%s\" created successfully.\n", task.Identifier, task.Title)
	return exitcode.Success
}

// TaskUpdateCmd changes the title or description of a task.
type TaskUpdateCmd struct {
	title       string
	description string
}

func (c *TaskUpdateCmd) Name() string      { return "task update" }
func (c *TaskUpdateCmd) Aliases() []string { return nil }
func (c *TaskUpdateCmd) Synopsis() string  { return "Update a task" }
func (c *TaskUpdateCmd) Usage() string {
	return "linear task update [common flags] [-t <title>] [-d <description>] <id>"
}
func (c *TaskUpdateCmd) NeedsAuth() bool { return true }

func (c *TaskUpdateCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.title, "title", "t", "", "New task title")
	fs.StringVarP(&c.description, "description", "d", "", "New task description")
}

func (c *TaskUpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}

	// Empty values count as absent.
	var in service.TaskUpdateInput
	if c.title != "" {
		in.Title = service.String(c.title)
	}
	if c.description != "" {
		in.Description = service.String(c.description)
	}
	if in.IsEmpty() {
		return fail(errOut, service.InvalidInputf("At least one property (title or description) must be provided to update."))
	}

	task, err := svc.UpdateTask(ctx, args[0], in)
	if err != nil {
		return fail(errOut, err)
	}

	info(cfg, out, "Task [%s] updated successfully.", task.Identifier)
	return exitcode.Success
}

// TaskDeleteCmd archives a task.
type TaskDeleteCmd struct{}

func (c *TaskDeleteCmd) Name() string      { return "task delete" }
func (c *TaskDeleteCmd) Aliases() []string { return []string{"task rm"} }
func (c *TaskDeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *TaskDeleteCmd) Usage() string     { return "linear task delete [common flags] <id>" }
func (c *TaskDeleteCmd) NeedsAuth() bool   { return true }

func (c *TaskDeleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *TaskDeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	if err := svc.ArchiveTask(ctx, args[0]); err != nil {
		return fail(errOut, err)
	}

	info(cfg, out, "Task with ID \"%s\" deleted successfully.", args[0])
	return exitcode.Success
}
