// Package service defines the backend-agnostic interface for Linear operations.
package service

// Project represents a Linear project.
type Project struct {
	ID          string
	Name        string
	SlugID      string
	Description string
	StatusID    string // empty when the project has no status
}

// Task represents a Linear issue.
type Task struct {
	ID          string
	Identifier  string // human-readable key, e.g. "ENG-12"
	Title       string
	Description string
	StateID     string
}

// Document represents a Linear document.
type Document struct {
	ID        string
	Title     string
	Content   string
	ProjectID string
}

// WorkflowState is a status assignable to a task.
type WorkflowState struct {
	ID   string
	Name string
}

// ProjectStatus is a status assignable to a project.
type ProjectStatus struct {
	ID   string
	Name string
}

// Team represents a Linear team.
type Team struct {
	ID   string
	Key  string
	Name string
}

// ProjectCreateInput holds the fields for creating a project.
type ProjectCreateInput struct {
	Name    string
	TeamIDs []string
}

// ProjectUpdateInput holds optional project fields. Nil fields are left unchanged.
type ProjectUpdateInput struct {
	Name     *string
	StatusID *string
}

// TaskCreateInput holds the fields for creating a task.
type TaskCreateInput struct {
	Title       string
	TeamID      string
	ProjectID   string // optional
	Description string // optional
}

// TaskUpdateInput holds optional task fields. Nil fields are left unchanged.
type TaskUpdateInput struct {
	Title       *string
	Description *string
	StateID     *string
}

// IsEmpty reports whether no field is set.
func (in TaskUpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.StateID == nil
}

// DocumentCreateInput holds the fields for creating a document.
type DocumentCreateInput struct {
	Title     string
	ProjectID string
	Content   string // optional
}

// DocumentUpdateInput holds optional document fields. Nil fields are left unchanged.
type DocumentUpdateInput struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether no field is set.
func (in DocumentUpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Content == nil
}

// TaskFilter narrows ListTasks. The zero value lists everything.
type TaskFilter struct {
	ProjectID string
}

// DocumentFilter narrows ListDocuments. The zero value lists everything.
type DocumentFilter struct {
	ProjectID string
}

// String returns a pointer to s, for building update inputs.
func String(s string) *string {
	return &s
}
