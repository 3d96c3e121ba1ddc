package repository

import (
	"context"
	"testing"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tower")
	require.NoError(t, projRepo.Create(ctx, proj))

	task := testutil.NewTestTask(proj.ID, "foundation",
		testutil.WithCompletion(40),
		testutil.WithPriority(domain.PriorityHigh))
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "foundation", fetched.Name)
	assert.Equal(t, 40.0, fetched.CompletionPct)
	assert.Equal(t, domain.PriorityHigh, fetched.Priority)
	assert.Equal(t, domain.TaskTodo, fetched.Status)
	assert.Nil(t, fetched.BudgetLineID)
}

func TestTaskRepo_BudgetLineLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	lineRepo := NewSQLiteBudgetLineRepo(db)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tower")
	require.NoError(t, projRepo.Create(ctx, proj))
	line := testutil.NewTestBudgetLine(proj.ID, "concrete")
	require.NoError(t, lineRepo.Create(ctx, line))

	task := testutil.NewTestTask(proj.ID, "foundation", testutil.WithBudgetLine(line.ID))
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.BudgetLineID)
	assert.Equal(t, line.ID, *fetched.BudgetLineID)

	// Deleting the line nulls the link rather than deleting the task.
	require.NoError(t, lineRepo.Delete(ctx, line.ID))
	fetched, err = repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.BudgetLineID)
}

func TestTaskRepo_ListByProject_OrderedByStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tower")
	require.NoError(t, projRepo.Create(ctx, proj))

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	later := testutil.NewTestTask(proj.ID, "later", testutil.WithTaskDates(mar, mar.AddDate(0, 1, 0)))
	earlier := testutil.NewTestTask(proj.ID, "earlier", testutil.WithTaskDates(jan, jan.AddDate(0, 1, 0)))
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	tasks, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "earlier", tasks[0].Name)
	assert.Equal(t, "later", tasks[1].Name)
}

func TestTaskRepo_UpdateProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tower")
	require.NoError(t, projRepo.Create(ctx, proj))
	task := testutil.NewTestTask(proj.ID, "framing")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.UpdateProgress(ctx, task.ID, 100, domain.TaskCompleted))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, fetched.CompletionPct)
	assert.Equal(t, domain.TaskCompleted, fetched.Status)
}

func TestTaskRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tower")
	require.NoError(t, projRepo.Create(ctx, proj))
	task := testutil.NewTestTask(proj.ID, "demolition")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.Delete(ctx, task.ID))
	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_CascadeFromProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tower")
	require.NoError(t, projRepo.Create(ctx, proj))
	task := testutil.NewTestTask(proj.ID, "framing")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, projRepo.Delete(ctx, proj.ID))
	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
