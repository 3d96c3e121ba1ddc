package service

import (
	"context"
	"testing"
	"time"

	"github.com/evanmoss/outlay/internal/app"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostService_Log_DefaultsRecordedAt(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCostService(repos.costs, repos.tasks)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plant")
	require.NoError(t, repos.projects.Create(ctx, proj))
	task := testutil.NewTestTask(proj.ID, "piping")
	require.NoError(t, repos.tasks.Create(ctx, task))

	entry := &domain.CostEntry{TaskID: task.ID, Amount: 1200, Note: "valves"}
	require.NoError(t, svc.Log(ctx, entry))

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.RecordedAt.IsZero())
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), entry.RecordedAt.Format("2006-01-02"))

	entries, err := svc.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "valves", entries[0].Note)
}

func TestCostService_Log_RejectsNonPositiveAmount(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCostService(repos.costs, repos.tasks)
	ctx := context.Background()

	var verr *app.ValidationError
	require.ErrorAs(t, svc.Log(ctx, &domain.CostEntry{TaskID: "any", Amount: 0}), &verr)
	require.ErrorAs(t, svc.Log(ctx, &domain.CostEntry{TaskID: "any", Amount: -50}), &verr)
}

func TestCostService_Log_RejectsUnknownTask(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCostService(repos.costs, repos.tasks)
	ctx := context.Background()

	err := svc.Log(ctx, &domain.CostEntry{TaskID: "missing", Amount: 100})
	assert.Error(t, err)
}
