package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"linearcli/internal/service"
)

func TestSectionHeader_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	SectionHeader(&buf, "Projects")
	assert.Equal(t, "\n--- Projects ---\n", buf.String())
}

func TestFormatProject(t *testing.T) {
	var buf bytes.Buffer
	FormatProject(&buf, service.Project{ID: "1", Name: "Project 1", SlugID: "P1"})
	assert.Equal(t, "- Project 1 (1) [P1]\n", buf.String())
}

func TestFormatProjectDetail_OptionalDescription(t *testing.T) {
	var buf bytes.Buffer
	FormatProjectDetail(&buf, service.Project{ID: "1", Name: "P", SlugID: "S"})
	assert.Equal(t, "Project: P\nID: 1\nSlug: S\n", buf.String())

	buf.Reset()
	FormatProjectDetail(&buf, service.Project{ID: "1", Name: "P", SlugID: "S", Description: "Desc"})
	assert.Equal(t, "Project: P\nID: 1\nSlug: S\nDescription: Desc\n", buf.String())
}

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, service.Task{ID: "i1", Identifier: "ABC-1", Title: "Fix\nbug"})
	assert.Equal(t, "- [ABC-1] Fix bug (i1)\n", buf.String())
}

func TestFormatTaskRef(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskRef(&buf, service.Task{ID: "i1", Identifier: "ABC-1", Title: "Fix"})
	assert.Equal(t, "[i1] ABC-1: Fix\n", buf.String())
}

func TestFormatDocument_Untitled(t *testing.T) {
	var buf bytes.Buffer
	FormatDocument(&buf, service.Document{ID: "d1", Title: "  "})
	assert.Equal(t, "- (untitled) (d1)\n", buf.String())
}

func TestFormatDocumentDetail(t *testing.T) {
	var buf bytes.Buffer
	FormatDocumentDetail(&buf, service.Document{ID: "d1", Title: "Doc", Content: "Body"})
	assert.Equal(t, "Document: Doc\nID: d1\nContent: Body\n", buf.String())
}

func TestFormatTeam(t *testing.T) {
	var buf bytes.Buffer
	FormatTeam(&buf, service.Team{ID: "t1", Key: "ENG", Name: "Engineering"}, false)
	FormatTeam(&buf, service.Team{ID: "t2", Key: "OPS", Name: "Ops"}, true)
	assert.Equal(t, "- ENG Engineering (t1)\n- OPS Ops (t2) (default)\n", buf.String())
}
