package linear

import (
	"context"

	"linearcli/internal/service"
)

const (
	queryDocuments = `query Documents($filter: DocumentFilter) {
  documents(filter: $filter) { nodes { ` + documentFields + ` } }
}`
	queryDocument = `query Document($id: String!) {
  document(id: $id) { ` + documentFields + ` }
}`
	mutationDocumentCreate = `mutation DocumentCreate($input: DocumentCreateInput!) {
  documentCreate(input: $input) { success document { ` + documentFields + ` } }
}`
	mutationDocumentUpdate = `mutation DocumentUpdate($id: String!, $input: DocumentUpdateInput!) {
  documentUpdate(id: $id, input: $input) { success document { ` + documentFields + ` } }
}`
	mutationDocumentDelete = `mutation DocumentDelete($id: String!) {
  documentDelete(id: $id) { success }
}`
)

type documentPayload struct {
	Success  bool          `json:"success"`
	Document *documentNode `json:"document"`
}

func (c *Client) listDocuments(ctx context.Context, filter *documentFilter) ([]service.Document, error) {
	var data struct {
		Documents connection[documentNode] `json:"documents"`
	}
	if err := c.do(ctx, "Documents", queryDocuments, withFilter(filter), &data); err != nil {
		return nil, err
	}
	return convert(data.Documents.Nodes, documentNode.toService), nil
}

// ListDocuments returns documents matching filter in API order.
func (c *Client) ListDocuments(ctx context.Context, filter service.DocumentFilter) ([]service.Document, error) {
	if filter.ProjectID == "" {
		return c.listDocuments(ctx, nil)
	}
	return c.listDocuments(ctx, &documentFilter{Project: &projectFilter{ID: eq(filter.ProjectID)}})
}

// SearchDocuments returns documents whose title contains query.
func (c *Client) SearchDocuments(ctx context.Context, query string) ([]service.Document, error) {
	return c.listDocuments(ctx, &documentFilter{Title: contains(query)})
}

// GetDocument returns a document by ID.
func (c *Client) GetDocument(ctx context.Context, id string) (*service.Document, error) {
	var data struct {
		Document *documentNode `json:"document"`
	}
	if err := c.do(ctx, "Document", queryDocument, idVars{ID: id}, &data); err != nil {
		return nil, err
	}
	if data.Document == nil {
		return nil, nil
	}
	d := data.Document.toService()
	return &d, nil
}

// CreateDocument creates a document.
func (c *Client) CreateDocument(ctx context.Context, in service.DocumentCreateInput) (service.Document, error) {
	input := documentCreateInput{Title: in.Title, ProjectID: in.ProjectID, Content: in.Content}
	var data struct {
		DocumentCreate documentPayload `json:"documentCreate"`
	}
	if err := c.do(ctx, "DocumentCreate", mutationDocumentCreate, inputVars[documentCreateInput]{Input: input}, &data); err != nil {
		return service.Document{}, err
	}
	node, err := unwrap(data.DocumentCreate.Success, data.DocumentCreate.Document, "create", "document")
	if err != nil {
		return service.Document{}, err
	}
	return node.toService(), nil
}

// UpdateDocument updates the fields of in that are set.
func (c *Client) UpdateDocument(ctx context.Context, id string, in service.DocumentUpdateInput) (service.Document, error) {
	vars := updateVars[documentUpdateInput]{
		ID:    id,
		Input: documentUpdateInput{Title: in.Title, Content: in.Content},
	}
	var data struct {
		DocumentUpdate documentPayload `json:"documentUpdate"`
	}
	if err := c.do(ctx, "DocumentUpdate", mutationDocumentUpdate, vars, &data); err != nil {
		return service.Document{}, err
	}
	node, err := unwrap(data.DocumentUpdate.Success, data.DocumentUpdate.Document, "update", "document")
	if err != nil {
		return service.Document{}, err
	}
	return node.toService(), nil
}

// DeleteDocument deletes a document.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	var data struct {
		DocumentDelete archivePayload `json:"documentDelete"`
	}
	if err := c.do(ctx, "DocumentDelete", mutationDocumentDelete, idVars{ID: id}, &data); err != nil {
		return err
	}
	if !data.DocumentDelete.Success {
		return service.OperationFailedf("Failed to delete document")
	}
	return nil
}
