// Package service defines the backend-agnostic interface for Linear operations.
package service

import "context"

// Service defines the interface for Linear backend operations.
// All Linear API calls go through this interface.
// Commands never talk to the API directly.
type Service interface {
	// ListProjects returns all projects in API order.
	ListProjects(ctx context.Context) ([]Project, error)

	// GetProject returns a project by ID or slug. Returns nil if the API
	// returned no record.
	GetProject(ctx context.Context, id string) (*Project, error)

	// CreateProject creates a project and returns it.
	CreateProject(ctx context.Context, in ProjectCreateInput) (Project, error)

	// UpdateProject updates a project and returns it.
	UpdateProject(ctx context.Context, id string, in ProjectUpdateInput) (Project, error)

	// ArchiveProject archives a project.
	ArchiveProject(ctx context.Context, id string) error

	// SearchProjects returns projects whose name contains query.
	SearchProjects(ctx context.Context, query string) ([]Project, error)

	// ListTasks returns tasks matching filter in API order.
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)

	// GetTask returns a task by ID or identifier. Returns nil if the API
	// returned no record.
	GetTask(ctx context.Context, id string) (*Task, error)

	// CreateTask creates a task and returns it.
	CreateTask(ctx context.Context, in TaskCreateInput) (Task, error)

	// UpdateTask updates a task and returns it.
	UpdateTask(ctx context.Context, id string, in TaskUpdateInput) (Task, error)

	// ArchiveTask archives a task.
	ArchiveTask(ctx context.Context, id string) error

	// SearchTasks returns tasks whose title or description contains query.
	SearchTasks(ctx context.Context, query string) ([]Task, error)

	// ListDocuments returns documents matching filter in API order.
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]Document, error)

	// GetDocument returns a document by ID. Returns nil if the API returned
	// no record.
	GetDocument(ctx context.Context, id string) (*Document, error)

	// CreateDocument creates a document and returns it.
	CreateDocument(ctx context.Context, in DocumentCreateInput) (Document, error)

	// UpdateDocument updates a document and returns it.
	UpdateDocument(ctx context.Context, id string, in DocumentUpdateInput) (Document, error)

	// DeleteDocument deletes a document.
	DeleteDocument(ctx context.Context, id string) error

	// SearchDocuments returns documents whose title contains query.
	SearchDocuments(ctx context.Context, query string) ([]Document, error)

	// ListWorkflowStates returns the task statuses visible to the user.
	ListWorkflowStates(ctx context.Context) ([]WorkflowState, error)

	// ListProjectStatuses returns the project statuses of the organization.
	ListProjectStatuses(ctx context.Context) ([]ProjectStatus, error)

	// ListTeams returns the teams visible to the user.
	ListTeams(ctx context.Context) ([]Team, error)

	// ResolveTeamID returns identifier unchanged if it is already an ID,
	// otherwise looks the team up by key (case-insensitive).
	ResolveTeamID(ctx context.Context, identifier string) (string, error)
}
