package linear

import "linearcli/internal/service"

// GraphQL selections shared by queries and mutations.
const (
	projectFields  = `id name slugId description status { id }`
	issueFields    = `id identifier title description state { id }`
	documentFields = `id title content project { id }`
)

type idRef struct {
	ID string `json:"id"`
}

func refID(r *idRef) string {
	if r == nil {
		return ""
	}
	return r.ID
}

type projectNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SlugID      string `json:"slugId"`
	Description string `json:"description"`
	Status      *idRef `json:"status"`
}

func (n projectNode) toService() service.Project {
	return service.Project{
		ID:          n.ID,
		Name:        n.Name,
		SlugID:      n.SlugID,
		Description: n.Description,
		StatusID:    refID(n.Status),
	}
}

type issueNode struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       *idRef `json:"state"`
}

func (n issueNode) toService() service.Task {
	return service.Task{
		ID:          n.ID,
		Identifier:  n.Identifier,
		Title:       n.Title,
		Description: n.Description,
		StateID:     refID(n.State),
	}
}

type documentNode struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Project *idRef `json:"project"`
}

func (n documentNode) toService() service.Document {
	return service.Document{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		ProjectID: refID(n.Project),
	}
}

type namedNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// connection is the paged {nodes: [...]} wrapper of list queries.
type connection[N any] struct {
	Nodes []N `json:"nodes"`
}

// convert maps nodes to service values, keeping API order.
func convert[N any, T any](nodes []N, fn func(N) T) []T {
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, fn(n))
	}
	return out
}

// archivePayload is returned by archive and delete mutations.
type archivePayload struct {
	Success bool `json:"success"`
}

// Operation variables. Optional fields are omitted so updates only touch
// what was set.

type idVars struct {
	ID string `json:"id"`
}

type filterVars[F any] struct {
	Filter *F `json:"filter,omitempty"`
}

type inputVars[I any] struct {
	Input I `json:"input"`
}

type updateVars[I any] struct {
	ID    string `json:"id"`
	Input I      `json:"input"`
}

// withFilter returns nil variables for a nil filter, so list queries send none.
func withFilter[F any](f *F) interface{} {
	if f == nil {
		return nil
	}
	return filterVars[F]{Filter: f}
}

type stringComparator struct {
	Eq       string `json:"eq,omitempty"`
	Contains string `json:"contains,omitempty"`
}

func eq(v string) *stringComparator       { return &stringComparator{Eq: v} }
func contains(q string) *stringComparator { return &stringComparator{Contains: q} }

type projectFilter struct {
	ID   *stringComparator `json:"id,omitempty"`
	Name *stringComparator `json:"name,omitempty"`
}

type issueFilter struct {
	Title       *stringComparator `json:"title,omitempty"`
	Description *stringComparator `json:"description,omitempty"`
	Project     *projectFilter    `json:"project,omitempty"`
	Or          []issueFilter     `json:"or,omitempty"`
}

type documentFilter struct {
	Title   *stringComparator `json:"title,omitempty"`
	Project *projectFilter    `json:"project,omitempty"`
}

type teamFilter struct {
	Key *stringComparator `json:"key,omitempty"`
}

type projectCreateInput struct {
	Name    string   `json:"name"`
	TeamIDs []string `json:"teamIds"`
}

type projectUpdateInput struct {
	Name     *string `json:"name,omitempty"`
	StatusID *string `json:"statusId,omitempty"`
}

type issueCreateInput struct {
	Title       string `json:"title"`
	TeamID      string `json:"teamId"`
	ProjectID   string `json:"projectId,omitempty"`
	Description string `json:"description,omitempty"`
}

type issueUpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StateID     *string `json:"stateId,omitempty"`
}

type documentCreateInput struct {
	Title     string `json:"title"`
	ProjectID string `json:"projectId"`
	Content   string `json:"content,omitempty"`
}

type documentUpdateInput struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
