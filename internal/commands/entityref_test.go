package commands_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linearcli/internal/commands"
	"linearcli/internal/service"
	"linearcli/internal/testutil"
)

func TestResolveEntity_TaskBeforeProject(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Task{ID: "shared"}, "")
	svc.AddProject(service.Project{ID: "shared"})

	kind, id, err := commands.ResolveEntity(context.Background(), svc, "shared")

	require.NoError(t, err)
	assert.Equal(t, commands.KindTask, kind)
	assert.Equal(t, "shared", id)
	assert.Equal(t, []string{"GetTask"}, svc.Methods())
}

func TestResolveEntity_FallsBackToProject(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddProject(service.Project{ID: "p1", SlugID: "apollo"})

	kind, id, err := commands.ResolveEntity(context.Background(), svc, "apollo")

	require.NoError(t, err)
	assert.Equal(t, commands.KindProject, kind)
	assert.Equal(t, "p1", id)
	assert.Equal(t, []string{"GetTask", "GetProject"}, svc.Methods())
}

func TestResolveEntity_LookupErrorMeansNotThisKind(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddProject(service.Project{ID: "p1"})
	svc.Errs["GetTask"] = errors.New("request failed with status 500: oops")

	kind, _, err := commands.ResolveEntity(context.Background(), svc, "p1")

	require.NoError(t, err)
	assert.Equal(t, commands.KindProject, kind)
}

func TestResolveEntity_CancelledContextPropagates(t *testing.T) {
	svc := testutil.NewFakeService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Errs["GetTask"] = ctx.Err()

	_, _, err := commands.ResolveEntity(ctx, svc, "x")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"GetTask"}, svc.Methods())
}

func TestResolveEntity_NotFound(t *testing.T) {
	_, _, err := commands.ResolveEntity(context.Background(), testutil.NewFakeService(), "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	assert.Equal(t, `Entity with ID "nope" not found.`, err.Error())
}

func TestResolveStatusID_UUIDSkipsLookup(t *testing.T) {
	svc := testutil.NewFakeService()
	upper := "550E8400-E29B-41D4-A716-446655440000"

	for _, kind := range []commands.EntityKind{commands.KindTask, commands.KindProject} {
		id, err := commands.ResolveStatusID(context.Background(), svc, kind, upper)
		require.NoError(t, err)
		assert.Equal(t, upper, id)
	}
	assert.Empty(t, svc.Calls())
}

func TestResolveStatusID_ScopedLookup(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddWorkflowState("ws-done", "Done")
	svc.AddProjectStatus("ps-done", "Done")

	id, err := commands.ResolveStatusID(context.Background(), svc, commands.KindProject, "done")

	require.NoError(t, err)
	assert.Equal(t, "ps-done", id)
	assert.Equal(t, []string{"ListProjectStatuses"}, svc.Methods())
}

func TestResolveStatusID_FirstMatchWins(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddWorkflowState("first", "In Progress")
	svc.AddWorkflowState("second", "in progress")

	id, err := commands.ResolveStatusID(context.Background(), svc, commands.KindTask, "IN PROGRESS")

	require.NoError(t, err)
	assert.Equal(t, "first", id)
}

func TestResolveStatusID_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddWorkflowState("ws", "Todo")

	_, err := commands.ResolveStatusID(context.Background(), svc, commands.KindTask, "Shipped")
	assert.EqualError(t, err, `Status "Shipped" not found for tasks.`)

	_, err = commands.ResolveStatusID(context.Background(), svc, commands.KindProject, "Shipped")
	assert.EqualError(t, err, `Status "Shipped" not found for projects.`)
}

func TestSetStatus_ProjectWithStatusID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddProject(service.Project{ID: "p1"})
	statusID := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	kind, err := commands.SetStatus(context.Background(), svc, "p1", statusID)

	require.NoError(t, err)
	assert.Equal(t, commands.KindProject, kind)
	assert.Equal(t, []string{"GetTask", "GetProject", "UpdateProject"}, svc.Methods())
	in := svc.CallsTo("UpdateProject")[0].Args[1].(service.ProjectUpdateInput)
	require.NotNil(t, in.StatusID)
	assert.Equal(t, statusID, *in.StatusID)
	assert.Nil(t, in.Name)
}

func TestSetStatus_UnknownStatusDoesNotUpdate(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Task{ID: "i1"}, "")

	_, err := commands.SetStatus(context.Background(), svc, "i1", "Nope")

	require.Error(t, err)
	assert.Empty(t, svc.CallsTo("UpdateTask"))
}
