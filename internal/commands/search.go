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
	Register(&SearchCmd{})
}

// SearchCmd searches projects, issues and documents at once.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return nil }
func (c *SearchCmd) Synopsis() string  { return "Search projects, issues, and documents" }
func (c *SearchCmd) Usage() string     { return "linear search [common flags] <query>" }
func (c *SearchCmd) NeedsAuth() bool   { return true }

func (c *SearchCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"query"}, 0); err != nil {
		return fail(errOut, err)
	}
	query := args[0]

	var (
		projects []service.Project
		tasks    []service.Task
		docs     []service.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = svc.SearchProjects(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = svc.SearchTasks(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		docs, err = svc.SearchDocuments(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return fail(errOut, err)
	}

	output.SectionHeader(out, "Projects")
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found.")
	}
	for _, p := range projects {
		output.FormatRef(out, p.ID, p.Name)
	}

	output.SectionHeader(out, "Issues")
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No issues found.")
	}
	for _, t := range tasks {
		output.FormatTaskRef(out, t)
	}

	output.SectionHeader(out, "Documents")
	if len(docs) == 0 {
		fmt.Fprintln(out, "No documents found.")
	}
	for _, d := range docs {
		output.FormatRef(out, d.ID, d.Title)
	}
	return exitcode.Success
}
