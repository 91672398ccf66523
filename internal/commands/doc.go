package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"linearcli/internal/config"
	"linearcli/internal/exitcode"
	"linearcli/internal/output"
	"linearcli/internal/service"
)

func init() {
	Register(&DocListCmd{})
	Register(&DocShowCmd{})
	Register(&DocCreateCmd{})
	Register(&DocUpdateCmd{})
	Register(&DocDeleteCmd{})
}

// DocListCmd lists documents, optionally scoped to a project.
type DocListCmd struct {
	project string
}

func (c *DocListCmd) Name() string      { return "doc list" }
func (c *DocListCmd) Aliases() []string { return []string{"docs"} }
func (c *DocListCmd) Synopsis() string  { return "List all documents" }
func (c *DocListCmd) Usage() string     { return "linear doc list [common flags] [-p <projectId>]" }
func (c *DocListCmd) NeedsAuth() bool   { return true }

func (c *DocListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.project, "project", "p", "", "Filter documents by project ID")
}

func (c *DocListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, nil, 0); err != nil {
		return fail(errOut, err)
	}
	docs, err := svc.ListDocuments(ctx, service.DocumentFilter{ProjectID: c.project})
	if err != nil {
		return fail(errOut, err)
	}
	if len(docs) == 0 {
		fmt.Fprintln(out, "No documents found.")
		return exitcode.Success
	}

	fmt.Fprintln(out, "Documents:")
	for _, d := range docs {
		output.FormatDocument(out, d)
	}
	return exitcode.Success
}

// DocShowCmd prints one document.
type DocShowCmd struct{}

func (c *DocShowCmd) Name() string      { return "doc show" }
func (c *DocShowCmd) Aliases() []string { return nil }
func (c *DocShowCmd) Synopsis() string  { return "Show document details" }
func (c *DocShowCmd) Usage() string     { return "linear doc show [common flags] <id>" }
func (c *DocShowCmd) NeedsAuth() bool   { return true }

func (c *DocShowCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *DocShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	id := args[0]
	doc, err := svc.GetDocument(ctx, id)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return fail(errOut, err)
	}
	if doc == nil {
		return fail(errOut, service.NotFoundf("Document with ID \"%s\" not found.", id))
	}

	output.FormatDocumentDetail(out, *doc)
	return exitcode.Success
}

// DocCreateCmd creates a document in a project.
type DocCreateCmd struct {
	content  string
	fromFile string
}

func (c *DocCreateCmd) Name() string      { return "doc create" }
func (c *DocCreateCmd) Aliases() []string { return []string{"doc add"} }
func (c *DocCreateCmd) Synopsis() string  { return "Create a new document" }
func (c *DocCreateCmd) Usage() string {
	return "linear doc create [common flags] [-c <content> | --create-from-file <path>] <title> <projectId>"
}
func (c *DocCreateCmd) NeedsAuth() bool { return true }

func (c *DocCreateCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.content, "content", "c", "", "Document content")
	fs.StringVar(&c.fromFile, "create-from-file", "", "Path to a markdown file to use as content")
}

func (c *DocCreateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"title", "projectId"}, 0); err != nil {
		return fail(errOut, err)
	}

	// --create-from-file wins over --content.
	content := c.content
	if c.fromFile != "" {
		data, err := os.ReadFile(c.fromFile)
		if errors.Is(err, os.ErrNotExist) {
			return fail(errOut, service.InvalidInputf("File \"%s\" does not exist.", c.fromFile))
		}
		if err != nil {
			return fail(errOut, service.InvalidInputf("failed to read %s: %v", c.fromFile, err))
		}
		content = string(data)
	}

	doc, err := svc.CreateDocument(ctx, service.DocumentCreateInput{
		Title:     args[0],
		ProjectID: args[1],
		Content:   content,
	})
	if err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintf(out, "Document \"%s\" created successfully with ID %s\n", doc.Title, doc.ID)
	return exitcode.Success
}

// DocUpdateCmd changes the title or content of a document.
type DocUpdateCmd struct {
	title   string
	content string
}

func (c *DocUpdateCmd) Name() string      { return "doc update" }
func (c *DocUpdateCmd) Aliases() []string { return nil }
func (c *DocUpdateCmd) Synopsis() string  { return "Update a document" }
func (c *DocUpdateCmd) Usage() string {
	return "linear doc update [common flags] [-t <title>] [-c <content>] <id>"
}
func (c *DocUpdateCmd) NeedsAuth() bool { return true }

func (c *DocUpdateCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.title, "title", "t", "", "New document title")
	fs.StringVarP(&c.content, "content", "c", "", "New document content")
}

func (c *DocUpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}

	var in service.DocumentUpdateInput
	if c.title != "" {
		in.Title = service.String(c.title)
	}
	if c.content != "" {
		in.Content = service.String(c.content)
	}
	if in.IsEmpty() {
		return fail(errOut, service.InvalidInputf("At least one property (title or content) must be provided to update."))
	}

	doc, err := svc.UpdateDocument(ctx, args[0], in)
	if err != nil {
		return fail(errOut, err)
	}

	info(cfg, out, "Document \"%s\" updated successfully.", doc.Title)
	return exitcode.Success
}

// DocDeleteCmd deletes a document.
type DocDeleteCmd struct{}

func (c *DocDeleteCmd) Name() string      { return "doc delete" }
func (c *DocDeleteCmd) Aliases() []string { return []string{"doc rm"} }
func (c *DocDeleteCmd) Synopsis() string  { return "Delete a document" }
func (c *DocDeleteCmd) Usage() string     { return "linear doc delete [common flags] <id>" }
func (c *DocDeleteCmd) NeedsAuth() bool   { return true }

func (c *DocDeleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *DocDeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := checkArgs(args, []string{"id"}, 0); err != nil {
		return fail(errOut, err)
	}
	if err := svc.DeleteDocument(ctx, args[0]); err != nil {
		return fail(errOut, err)
	}

	info(cfg, out, "Document with ID \"%s\" deleted successfully.", args[0])
	return exitcode.Success
}
