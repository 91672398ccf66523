// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"linearcli/internal/service"
)

// SectionHeader prints a blank line and a "--- title ---" header.
// The header is bold when w is a color terminal.
func SectionHeader(w io.Writer, title string) {
	text := "--- " + title + " ---"
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() != termenv.Ascii {
		text = r.NewStyle().Bold(true).Render(text)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, text)
}

// FormatProject formats a project line for project listings.
// Format: "- {NAME} ({ID}) [{SLUG}]"
func FormatProject(w io.Writer, p service.Project) {
	fmt.Fprintf(w, "- %s (%s) [%s]\n", normalizeTitle(p.Name), p.ID, p.SlugID)
}

// FormatProjectDetail formats the output of project show.
func FormatProjectDetail(w io.Writer, p service.Project) {
	fmt.Fprintf(w, "Project: %s\n", p.Name)
	fmt.Fprintf(w, "ID: %s\n", p.ID)
	fmt.Fprintf(w, "Slug: %s\n", p.SlugID)
	if p.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", p.Description)
	}
}

// FormatTask formats a task line for task listings.
// Format: "- [{IDENTIFIER}] {TITLE} ({ID})"
func FormatTask(w io.Writer, t service.Task) {
	fmt.Fprintf(w, "- [%s] %s (%s)\n", t.Identifier, normalizeTitle(t.Title), t.ID)
}

// FormatTaskDetail formats the output of task show.
func FormatTaskDetail(w io.Writer, t service.Task) {
	fmt.Fprintf(w, "Task: [%s] %s\n", t.Identifier, t.Title)
	fmt.Fprintf(w, "ID: %s\n", t.ID)
	if t.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", t.Description)
	}
}

// FormatDocument formats a document line for document listings.
// Format: "- {TITLE} ({ID})"
func FormatDocument(w io.Writer, d service.Document) {
	fmt.Fprintf(w, "- %s (%s)\n", normalizeTitle(d.Title), d.ID)
}

// FormatDocumentDetail formats the output of doc show.
func FormatDocumentDetail(w io.Writer, d service.Document) {
	fmt.Fprintf(w, "Document: %s\n", d.Title)
	fmt.Fprintf(w, "ID: %s\n", d.ID)
	if d.Content != "" {
		fmt.Fprintf(w, "Content: %s\n", d.Content)
	}
}

// FormatTeam formats a team line for team listings.
// Format: "- {KEY} {NAME} ({ID})", with " (default)" appended for the default team.
func FormatTeam(w io.Writer, t service.Team, isDefault bool) {
	suffix := ""
	if isDefault {
		suffix = " (default)"
	}
	fmt.Fprintf(w, "- %s %s (%s)%s\n", t.Key, normalizeTitle(t.Name), t.ID, suffix)
}

// FormatRef formats a "[{ID}] {LABEL}" line, used by search and status listings.
func FormatRef(w io.Writer, id, label string) {
	fmt.Fprintf(w, "[%s] %s\n", id, normalizeTitle(label))
}

// FormatTaskRef formats a "[{ID}] {IDENTIFIER}: {TITLE}" search line.
func FormatTaskRef(w io.Writer, t service.Task) {
	fmt.Fprintf(w, "[%s] %s: %s\n", t.ID, t.Identifier, normalizeTitle(t.Title))
}

// normalizeTitle normalizes a title for single-line display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
