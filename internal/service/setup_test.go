package service

import (
	"testing"

	"github.com/evanmoss/outlay/internal/repository"
	"github.com/evanmoss/outlay/internal/testutil"
)

type testRepos struct {
	projects *repository.SQLiteProjectRepo
	tasks    *repository.SQLiteTaskRepo
	lines    *repository.SQLiteBudgetLineRepo
	costs    *repository.SQLiteCostRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	db := testutil.NewTestDB(t)
	return testRepos{
		projects: repository.NewSQLiteProjectRepo(db),
		tasks:    repository.NewSQLiteTaskRepo(db),
		lines:    repository.NewSQLiteBudgetLineRepo(db),
		costs:    repository.NewSQLiteCostRepo(db),
	}
}
