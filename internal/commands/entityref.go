package commands

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"linearcli/internal/service"
)

// EntityKind is the kind of entity a status applies to.
type EntityKind int

const (
	KindTask EntityKind = iota
	KindProject
)

// String returns the singular name used in confirmations.
func (k EntityKind) String() string {
	if k == KindProject {
		return "project"
	}
	return "task"
}

func (k EntityKind) plural() string {
	return k.String() + "s"
}

// ResolveEntity determines whether id names a task or a project and
// returns the entity's canonical id. Tasks are tried first. A failed lookup
// counts as "not this kind" unless the context is done.
func ResolveEntity(ctx context.Context, svc service.Service, id string) (EntityKind, string, error) {
	task, err := svc.GetTask(ctx, id)
	if ctxErr := cancelled(ctx, err); ctxErr != nil {
		return 0, "", ctxErr
	}
	if err == nil && task != nil {
		return KindTask, canonical(task.ID, id), nil
	}

	project, err := svc.GetProject(ctx, id)
	if ctxErr := cancelled(ctx, err); ctxErr != nil {
		return 0, "", ctxErr
	}
	if err == nil && project != nil {
		return KindProject, canonical(project.ID, id), nil
	}

	return 0, "", service.NotFoundf("Entity with ID \"%s\" not found.", id)
}

func canonical(resolved, given string) string {
	if resolved == "" {
		return given
	}
	return resolved
}

// ResolveStatusID maps a status name to its id for the given kind.
// UUID-shaped tokens are returned as-is without a lookup.
func ResolveStatusID(ctx context.Context, svc service.Service, kind EntityKind, token string) (string, error) {
	if service.IsID(token) {
		return token, nil
	}

	type named struct{ id, name string }
	var candidates []named
	switch kind {
	case KindProject:
		statuses, err := svc.ListProjectStatuses(ctx)
		if err != nil {
			return "", err
		}
		for _, s := range statuses {
			candidates = append(candidates, named{s.ID, s.Name})
		}
	default:
		states, err := svc.ListWorkflowStates(ctx)
		if err != nil {
			return "", err
		}
		for _, s := range states {
			candidates = append(candidates, named{s.ID, s.Name})
		}
	}

	for _, c := range candidates {
		if strings.EqualFold(c.name, token) {
			return c.id, nil
		}
	}
	return "", service.NotFoundf("Status \"%s\" not found for %s.", token, kind.plural())
}

// SetStatus resolves the entity and status and applies the update.
func SetStatus(ctx context.Context, svc service.Service, id, token string) (EntityKind, error) {
	kind, entityID, err := ResolveEntity(ctx, svc, id)
	if err != nil {
		return 0, err
	}
	statusID, err := ResolveStatusID(ctx, svc, kind, token)
	if err != nil {
		return kind, err
	}
	if kind == KindProject {
		_, err = svc.UpdateProject(ctx, entityID, service.ProjectUpdateInput{StatusID: &statusID})
	} else {
		_, err = svc.UpdateTask(ctx, entityID, service.TaskUpdateInput{StateID: &statusID})
	}
	return kind, err
}

// cancelled returns the context error when a lookup failed because ctx ended.
func cancelled(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
