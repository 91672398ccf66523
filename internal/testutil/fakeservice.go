// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"linearcli/internal/service"
)

// Call is one recorded service invocation.
type Call struct {
	Method string
	Args   []interface{}
}

// FakeService is an in-memory implementation of service.Service for testing.
// Every method call is recorded, in order, before any error injection applies.
type FakeService struct {
	mu sync.Mutex

	projects        []service.Project
	tasks           []service.Task
	taskProject     map[string]string // task ID -> project ID
	documents       []service.Document
	workflowStates  []service.WorkflowState
	projectStatuses []service.ProjectStatus
	teams           []service.Team
	seq             int

	calls []Call

	// Errs injects an error for a method, keyed by method name
	// (e.g. "GetTask"). The call is still recorded.
	Errs map[string]error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		taskProject: make(map[string]string),
		Errs:        make(map[string]error),
	}
}

// AddProject adds a project.
func (f *FakeService) AddProject(p service.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, p)
}

// AddTask adds a task, optionally belonging to a project.
func (f *FakeService) AddTask(t service.Task, projectID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
	if projectID != "" {
		f.taskProject[t.ID] = projectID
	}
}

// AddDocument adds a document.
func (f *FakeService) AddDocument(d service.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.documents = append(f.documents, d)
}

// AddWorkflowState adds a task status.
func (f *FakeService) AddWorkflowState(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workflowStates = append(f.workflowStates, service.WorkflowState{ID: id, Name: name})
}

// AddProjectStatus adds a project status.
func (f *FakeService) AddProjectStatus(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projectStatuses = append(f.projectStatuses, service.ProjectStatus{ID: id, Name: name})
}

// AddTeam adds a team.
func (f *FakeService) AddTeam(t service.Team) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teams = append(f.teams, t)
}

// Calls returns a copy of all recorded calls.
func (f *FakeService) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Methods returns the names of all recorded calls, in order.
func (f *FakeService) Methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Method)
	}
	return out
}

// CallsTo returns the recorded calls of one method.
func (f *FakeService) CallsTo(method string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// record logs a call and returns the injected error, if any.
// Callers must hold f.mu.
func (f *FakeService) record(method string, args ...interface{}) error {
	f.calls = append(f.calls, Call{Method: method, Args: args})
	return f.Errs[method]
}

func (f *FakeService) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

// ListProjects implements service.Service.
func (f *FakeService) ListProjects(ctx context.Context) ([]service.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListProjects"); err != nil {
		return nil, err
	}
	return append([]service.Project(nil), f.projects...), nil
}

// GetProject implements service.Service. Matches ID or slug.
func (f *FakeService) GetProject(ctx context.Context, id string) (*service.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetProject", id); err != nil {
		return nil, err
	}
	for _, p := range f.projects {
		if p.ID == id || p.SlugID == id {
			p := p
			return &p, nil
		}
	}
	return nil, service.NotFoundf("Entity not found: Project")
}

// CreateProject implements service.Service.
func (f *FakeService) CreateProject(ctx context.Context, in service.ProjectCreateInput) (service.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateProject", in); err != nil {
		return service.Project{}, err
	}
	id := f.nextID("project")
	p := service.Project{ID: id, Name: in.Name, SlugID: strings.ToUpper(id)}
	f.projects = append(f.projects, p)
	return p, nil
}

// UpdateProject implements service.Service.
func (f *FakeService) UpdateProject(ctx context.Context, id string, in service.ProjectUpdateInput) (service.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateProject", id, in); err != nil {
		return service.Project{}, err
	}
	for i, p := range f.projects {
		if p.ID != id && p.SlugID != id {
			continue
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.StatusID != nil {
			p.StatusID = *in.StatusID
		}
		f.projects[i] = p
		return p, nil
	}
	return service.Project{}, service.NotFoundf("Entity not found: Project")
}

// ArchiveProject implements service.Service.
func (f *FakeService) ArchiveProject(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ArchiveProject", id); err != nil {
		return err
	}
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return service.NotFoundf("Entity not found: Project")
}

// SearchProjects implements service.Service.
func (f *FakeService) SearchProjects(ctx context.Context, query string) ([]service.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("SearchProjects", query); err != nil {
		return nil, err
	}
	var out []service.Project
	for _, p := range f.projects {
		if strings.Contains(p.Name, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListTasks", filter); err != nil {
		return nil, err
	}
	var out []service.Task
	for _, t := range f.tasks {
		if filter.ProjectID != "" && f.taskProject[t.ID] != filter.ProjectID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// GetTask implements service.Service. Matches ID or identifier.
func (f *FakeService) GetTask(ctx context.Context, id string) (*service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetTask", id); err != nil {
		return nil, err
	}
	for _, t := range f.tasks {
		if t.ID == id || t.Identifier == id {
			t := t
			return &t, nil
		}
	}
	return nil, service.NotFoundf("Entity not found: Issue")
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, in service.TaskCreateInput) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateTask", in); err != nil {
		return service.Task{}, err
	}
	id := f.nextID("issue")
	t := service.Task{
		ID:          id,
		Identifier:  fmt.Sprintf("ENG-%d", f.seq),
		Title:       in.Title,
		Description: in.Description,
	}
	f.tasks = append(f.tasks, t)
	if in.ProjectID != "" {
		f.taskProject[id] = in.ProjectID
	}
	return t, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, in service.TaskUpdateInput) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateTask", id, in); err != nil {
		return service.Task{}, err
	}
	for i, t := range f.tasks {
		if t.ID != id && t.Identifier != id {
			continue
		}
		if in.Title != nil {
			t.Title = *in.Title
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		if in.StateID != nil {
			t.StateID = *in.StateID
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, service.NotFoundf("Entity not found: Issue")
}

// ArchiveTask implements service.Service.
func (f *FakeService) ArchiveTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ArchiveTask", id); err != nil {
		return err
	}
	for i, t := range f.tasks {
		if t.ID == id || t.Identifier == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return service.NotFoundf("Entity not found: Issue")
}

// SearchTasks implements service.Service.
func (f *FakeService) SearchTasks(ctx context.Context, query string) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("SearchTasks", query); err != nil {
		return nil, err
	}
	var out []service.Task
	for _, t := range f.tasks {
		if strings.Contains(t.Title, query) || strings.Contains(t.Description, query) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListDocuments implements service.Service.
func (f *FakeService) ListDocuments(ctx context.Context, filter service.DocumentFilter) ([]service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListDocuments", filter); err != nil {
		return nil, err
	}
	var out []service.Document
	for _, d := range f.documents {
		if filter.ProjectID != "" && d.ProjectID != filter.ProjectID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// GetDocument implements service.Service.
func (f *FakeService) GetDocument(ctx context.Context, id string) (*service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetDocument", id); err != nil {
		return nil, err
	}
	for _, d := range f.documents {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

// CreateDocument implements service.Service.
func (f *FakeService) CreateDocument(ctx context.Context, in service.DocumentCreateInput) (service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateDocument", in); err != nil {
		return service.Document{}, err
	}
	d := service.Document{
		ID:        f.nextID("doc"),
		Title:     in.Title,
		Content:   in.Content,
		ProjectID: in.ProjectID,
	}
	f.documents = append(f.documents, d)
	return d, nil
}

// UpdateDocument implements service.Service.
func (f *FakeService) UpdateDocument(ctx context.Context, id string, in service.DocumentUpdateInput) (service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateDocument", id, in); err != nil {
		return service.Document{}, err
	}
	for i, d := range f.documents {
		if d.ID != id {
			continue
		}
		if in.Title != nil {
			d.Title = *in.Title
		}
		if in.Content != nil {
			d.Content = *in.Content
		}
		f.documents[i] = d
		return d, nil
	}
	return service.Document{}, service.NotFoundf("Entity not found: Document")
}

// DeleteDocument implements service.Service.
func (f *FakeService) DeleteDocument(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteDocument", id); err != nil {
		return err
	}
	for i, d := range f.documents {
		if d.ID == id {
			f.documents = append(f.documents[:i], f.documents[i+1:]...)
			return nil
		}
	}
	return service.NotFoundf("Entity not found: Document")
}

// SearchDocuments implements service.Service.
func (f *FakeService) SearchDocuments(ctx context.Context, query string) ([]service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("SearchDocuments", query); err != nil {
		return nil, err
	}
	var out []service.Document
	for _, d := range f.documents {
		if strings.Contains(d.Title, query) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListWorkflowStates implements service.Service.
func (f *FakeService) ListWorkflowStates(ctx context.Context) ([]service.WorkflowState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListWorkflowStates"); err != nil {
		return nil, err
	}
	return append([]service.WorkflowState(nil), f.workflowStates...), nil
}

// ListProjectStatuses implements service.Service.
func (f *FakeService) ListProjectStatuses(ctx context.Context) ([]service.ProjectStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListProjectStatuses"); err != nil {
		return nil, err
	}
	return append([]service.ProjectStatus(nil), f.projectStatuses...), nil
}

// ListTeams implements service.Service.
func (f *FakeService) ListTeams(ctx context.Context) ([]service.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListTeams"); err != nil {
		return nil, err
	}
	return append([]service.Team(nil), f.teams...), nil
}

// ResolveTeamID implements service.Service.
func (f *FakeService) ResolveTeamID(ctx context.Context, identifier string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ResolveTeamID", identifier); err != nil {
		return "", err
	}
	if service.IsID(identifier) {
		return identifier, nil
	}
	for _, t := range f.teams {
		if t.Key == strings.ToUpper(identifier) {
			return t.ID, nil
		}
	}
	return "", service.NotFoundf("Team with key \"%s\" not found.", identifier)
}

var _ service.Service = (*FakeService)(nil)
