package linear

import (
	"context"

	"linearcli/internal/service"
)

const (
	queryProjects = `query Projects($filter: ProjectFilter) {
  projects(filter: $filter) { nodes { ` + projectFields + ` } }
}`
	queryProject = `query Project($id: String!) {
  project(id: $id) { ` + projectFields + ` }
}`
	mutationProjectCreate = `mutation ProjectCreate($input: ProjectCreateInput!) {
  projectCreate(input: $input) { success project { ` + projectFields + ` } }
}`
	mutationProjectUpdate = `mutation ProjectUpdate($id: String!, $input: ProjectUpdateInput!) {
  projectUpdate(id: $id, input: $input) { success project { ` + projectFields + ` } }
}`
	mutationProjectArchive = `mutation ProjectArchive($id: String!) {
  projectArchive(id: $id) { success }
}`
)

type projectPayload struct {
	Success bool         `json:"success"`
	Project *projectNode `json:"project"`
}

func (c *Client) listProjects(ctx context.Context, filter *projectFilter) ([]service.Project, error) {
	var data struct {
		Projects connection[projectNode] `json:"projects"`
	}
	if err := c.do(ctx, "Projects", queryProjects, withFilter(filter), &data); err != nil {
		return nil, err
	}
	return convert(data.Projects.Nodes, projectNode.toService), nil
}

// ListProjects returns all projects in API order.
func (c *Client) ListProjects(ctx context.Context) ([]service.Project, error) {
	return c.listProjects(ctx, nil)
}

// SearchProjects returns projects whose name contains query.
func (c *Client) SearchProjects(ctx context.Context, query string) ([]service.Project, error) {
	return c.listProjects(ctx, &projectFilter{Name: contains(query)})
}

// GetProject returns a project by ID or slug.
func (c *Client) GetProject(ctx context.Context, id string) (*service.Project, error) {
	var data struct {
		Project *projectNode `json:"project"`
	}
	if err := c.do(ctx, "Project", queryProject, idVars{ID: id}, &data); err != nil {
		return nil, err
	}
	if data.Project == nil {
		return nil, nil
	}
	p := data.Project.toService()
	return &p, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in service.ProjectCreateInput) (service.Project, error) {
	input := projectCreateInput{Name: in.Name, TeamIDs: in.TeamIDs}
	var data struct {
		ProjectCreate projectPayload `json:"projectCreate"`
	}
	if err := c.do(ctx, "ProjectCreate", mutationProjectCreate, inputVars[projectCreateInput]{Input: input}, &data); err != nil {
		return service.Project{}, err
	}
	node, err := unwrap(data.ProjectCreate.Success, data.ProjectCreate.Project, "create", "project")
	if err != nil {
		return service.Project{}, err
	}
	return node.toService(), nil
}

// UpdateProject updates the fields of in that are set.
func (c *Client) UpdateProject(ctx context.Context, id string, in service.ProjectUpdateInput) (service.Project, error) {
	vars := updateVars[projectUpdateInput]{
		ID:    id,
		Input: projectUpdateInput{Name: in.Name, StatusID: in.StatusID},
	}
	var data struct {
		ProjectUpdate projectPayload `json:"projectUpdate"`
	}
	if err := c.do(ctx, "ProjectUpdate", mutationProjectUpdate, vars, &data); err != nil {
		return service.Project{}, err
	}
	node, err := unwrap(data.ProjectUpdate.Success, data.ProjectUpdate.Project, "update", "project")
	if err != nil {
		return service.Project{}, err
	}
	return node.toService(), nil
}

// ArchiveProject archives a project.
func (c *Client) ArchiveProject(ctx context.Context, id string) error {
	var data struct {
		ProjectArchive archivePayload `json:"projectArchive"`
	}
	if err := c.do(ctx, "ProjectArchive", mutationProjectArchive, idVars{ID: id}, &data); err != nil {
		return err
	}
	if !data.ProjectArchive.Success {
		return service.OperationFailedf("Failed to archive project")
	}
	return nil
}
