package linear

import (
	"context"
	"strings"

	"linearcli/internal/service"
)

const (
	queryWorkflowStates = `query WorkflowStates {
  workflowStates { nodes { id name } }
}`
	queryProjectStatuses = `query ProjectStatuses {
  projectStatuses { nodes { id name } }
}`
	queryTeams = `query Teams($filter: TeamFilter) {
  teams(filter: $filter) { nodes { id key name } }
}`
)

// ListWorkflowStates returns task statuses in API order.
func (c *Client) ListWorkflowStates(ctx context.Context) ([]service.WorkflowState, error) {
	var data struct {
		WorkflowStates connection[namedNode] `json:"workflowStates"`
	}
	if err := c.do(ctx, "WorkflowStates", queryWorkflowStates, nil, &data); err != nil {
		return nil, err
	}
	return convert(data.WorkflowStates.Nodes, func(n namedNode) service.WorkflowState {
		return service.WorkflowState{ID: n.ID, Name: n.Name}
	}), nil
}

// ListProjectStatuses returns project statuses in API order.
func (c *Client) ListProjectStatuses(ctx context.Context) ([]service.ProjectStatus, error) {
	var data struct {
		ProjectStatuses connection[namedNode] `json:"projectStatuses"`
	}
	if err := c.do(ctx, "ProjectStatuses", queryProjectStatuses, nil, &data); err != nil {
		return nil, err
	}
	return convert(data.ProjectStatuses.Nodes, func(n namedNode) service.ProjectStatus {
		return service.ProjectStatus{ID: n.ID, Name: n.Name}
	}), nil
}

func (c *Client) listTeams(ctx context.Context, filter *teamFilter) ([]service.Team, error) {
	var data struct {
		Teams connection[namedNode] `json:"teams"`
	}
	if err := c.do(ctx, "Teams", queryTeams, withFilter(filter), &data); err != nil {
		return nil, err
	}
	return convert(data.Teams.Nodes, func(n namedNode) service.Team {
		return service.Team{ID: n.ID, Key: n.Key, Name: n.Name}
	}), nil
}

// ListTeams returns all teams in API order.
func (c *Client) ListTeams(ctx context.Context) ([]service.Team, error) {
	return c.listTeams(ctx, nil)
}

// ResolveTeamID returns identifier unchanged when it is already an ID,
// otherwise the ID of the first team whose key equals it (uppercased).
func (c *Client) ResolveTeamID(ctx context.Context, identifier string) (string, error) {
	if service.IsID(identifier) {
		return identifier, nil
	}
	teams, err := c.listTeams(ctx, &teamFilter{Key: eq(strings.ToUpper(identifier))})
	if err != nil {
		return "", err
	}
	if len(teams) == 0 {
		return "", service.NotFoundf("Team with key \"%s\" not found.", identifier)
	}
	return teams[0].ID, nil
}

var _ service.Service = (*Client)(nil)
