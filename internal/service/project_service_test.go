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

func validProject(name string) *domain.Project {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Project{
		Name:               name,
		StartDate:          start,
		EndDate:            start.AddDate(0, 9, 0),
		BudgetAtCompletion: 1000000,
	}
}

func TestProjectService_Create_ValidShortID(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	proj := validProject("Headquarters Build")
	proj.ShortID = "HQ01"

	err := svc.Create(ctx, proj)
	require.NoError(t, err)
	assert.NotEmpty(t, proj.ID, "UUID should be generated")
	assert.Equal(t, domain.ProjectActive, proj.Status, "status should default to active")

	// Verify roundtrip
	fetched, err := svc.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Headquarters Build", fetched.Name)
	assert.Equal(t, "HQ01", fetched.ShortID)
}

func TestProjectService_Create_GeneratesShortID(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	proj := validProject("Harbor Works")
	require.NoError(t, svc.Create(ctx, proj))

	assert.Equal(t, "HAR01", proj.ShortID)
	require.NoError(t, proj.ValidateShortID())
}

func TestProjectService_Create_InvalidShortID(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	tests := []struct {
		name    string
		shortID string
	}{
		{"no digits", "HQPROJ"},
		{"too few letters", "H01"},
		{"too many letters", "HQPROJEC01"},
		{"only digits", "12345"},
		{"special chars", "HQ!01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			proj := validProject("Test")
			proj.ShortID = tc.shortID
			err := svc.Create(ctx, proj)
			assert.Error(t, err, "short ID %q should be rejected", tc.shortID)
		})
	}
}

func TestProjectService_Create_ContractViolations(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		proj := validProject("   ")
		err := svc.Create(ctx, proj)
		var verr *app.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("zero budget", func(t *testing.T) {
		proj := validProject("No Budget")
		proj.BudgetAtCompletion = 0
		err := svc.Create(ctx, proj)
		var verr *app.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "budget", verr.Field)
	})

	t.Run("end before start", func(t *testing.T) {
		proj := validProject("Backwards")
		proj.EndDate = proj.StartDate.AddDate(0, -1, 0)
		err := svc.Create(ctx, proj)
		var verr *app.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestProjectService_Resolve(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	proj := validProject("Bridge Retrofit")
	proj.ShortID = "BR01"
	require.NoError(t, svc.Create(ctx, proj))

	byShort, err := svc.Resolve(ctx, "br01")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, byShort.ID)

	byUUID, err := svc.Resolve(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, byUUID.ID)

	_, err = svc.Resolve(ctx, "nonexistent")
	assert.Error(t, err)
}

func TestProjectService_Delete_RequiresArchiveFirst(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	proj := testutil.NewTestProject("Active Project")
	require.NoError(t, repos.projects.Create(ctx, proj))

	// Delete without archiving should fail (force=false)
	err := svc.Delete(ctx, proj.ID, false)
	assert.Error(t, err, "should require archive before delete")

	require.NoError(t, svc.Archive(ctx, proj.ID))
	require.NoError(t, svc.Delete(ctx, proj.ID, false))

	_, err = svc.GetByID(ctx, proj.ID)
	assert.Error(t, err)
}

func TestProjectService_Delete_Force(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProjectService(repos.projects)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, repos.projects.Create(ctx, proj))

	require.NoError(t, svc.Delete(ctx, proj.ID, true))
}
