package linear

import (
	"context"

	"linearcli/internal/service"
)

const (
	queryIssues = `query Issues($filter: IssueFilter) {
  issues(filter: $filter) { nodes { ` + issueFields + ` } }
}`
	queryIssue = `query Issue($id: String!) {
  issue(id: $id) { ` + issueFields + ` }
}`
	mutationIssueCreate = `mutation IssueCreate($input: IssueCreateInput!) {
  issueCreate(input: $input) { success issue { ` + issueFields + ` } }
}`
	mutationIssueUpdate = `mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) { success issue { ` + issueFields + ` } }
}`
	mutationIssueArchive = `mutation IssueArchive($id: String!) {
  issueArchive(id: $id) { success }
}`
)

type issuePayload struct {
	Success bool       `json:"success"`
	Issue   *issueNode `json:"issue"`
}

func (c *Client) listIssues(ctx context.Context, filter *issueFilter) ([]service.Task, error) {
	var data struct {
		Issues connection[issueNode] `json:"issues"`
	}
	if err := c.do(ctx, "Issues", queryIssues, withFilter(filter), &data); err != nil {
		return nil, err
	}
	return convert(data.Issues.Nodes, issueNode.toService), nil
}

// ListTasks returns issues matching filter in API order.
func (c *Client) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	if filter.ProjectID == "" {
		return c.listIssues(ctx, nil)
	}
	return c.listIssues(ctx, &issueFilter{Project: &projectFilter{ID: eq(filter.ProjectID)}})
}

// SearchTasks returns issues whose title or description contains query.
func (c *Client) SearchTasks(ctx context.Context, query string) ([]service.Task, error) {
	return c.listIssues(ctx, &issueFilter{Or: []issueFilter{
		{Title: contains(query)},
		{Description: contains(query)},
	}})
}

// GetTask returns an issue by ID or identifier.
func (c *Client) GetTask(ctx context.Context, id string) (*service.Task, error) {
	var data struct {
		Issue *issueNode `json:"issue"`
	}
	if err := c.do(ctx, "Issue", queryIssue, idVars{ID: id}, &data); err != nil {
		return nil, err
	}
	if data.Issue == nil {
		return nil, nil
	}
	t := data.Issue.toService()
	return &t, nil
}

// CreateTask creates an issue.
func (c *Client) CreateTask(ctx context.Context, in service.TaskCreateInput) (service.Task, error) {
	input := issueCreateInput{
		Title:       in.Title,
		TeamID:      in.TeamID,
		ProjectID:   in.ProjectID,
		Description: in.Description,
	}
	var data struct {
		IssueCreate issuePayload `json:"issueCreate"`
	}
	if err := c.do(ctx, "IssueCreate", mutationIssueCreate, inputVars[issueCreateInput]{Input: input}, &data); err != nil {
		return service.Task{}, err
	}
	node, err := unwrap(data.IssueCreate.Success, data.IssueCreate.Issue, "create", "issue")
	if err != nil {
		return service.Task{}, err
	}
	return node.toService(), nil
}

// UpdateTask updates the fields of in that are set.
func (c *Client) UpdateTask(ctx context.Context, id string, in service.TaskUpdateInput) (service.Task, error) {
	vars := updateVars[issueUpdateInput]{
		ID: id,
		Input: issueUpdateInput{
			Title:       in.Title,
			Description: in.Description,
			StateID:     in.StateID,
		},
	}
	var data struct {
		IssueUpdate issuePayload `json:"issueUpdate"`
	}
	if err := c.do(ctx, "IssueUpdate", mutationIssueUpdate, vars, &data); err != nil {
		return service.Task{}, err
	}
	node, err := unwrap(data.IssueUpdate.Success, data.IssueUpdate.Issue, "update", "issue")
	if err != nil {
		return service.Task{}, err
	}
	return node.toService(), nil
}

// ArchiveTask archives an issue.
func (c *Client) ArchiveTask(ctx context.Context, id string) error {
	var data struct {
		IssueArchive archivePayload `json:"issueArchive"`
	}
	if err := c.do(ctx, "IssueArchive", mutationIssueArchive, idVars{ID: id}, &data); err != nil {
		return err
	}
	if !data.IssueArchive.Success {
		return service.OperationFailedf("Failed to archive issue")
	}
	return nil
}
