package main

import (
	"fmt"
	"os"

	"github.com/evanmoss/outlay/internal/cli"
	"github.com/evanmoss/outlay/internal/config"
	"github.com/evanmoss/outlay/internal/db"
	"github.com/evanmoss/outlay/internal/repository"
	"github.com/evanmoss/outlay/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(config.DBPath(cfg))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	lineRepo := repository.NewSQLiteBudgetLineRepo(database)
	costRepo := repository.NewSQLiteCostRepo(database)

	// Wire services
	projectSvc := service.NewProjectService(projectRepo)

	app := &cli.App{
		Projects:  projectSvc,
		Tasks:     service.NewTaskService(taskRepo, lineRepo),
		Budget:    service.NewBudgetService(lineRepo),
		Costs:     service.NewCostService(costRepo, taskRepo),
		Analytics: service.NewAnalyticsService(projectSvc, taskRepo, lineRepo, costRepo),
		Config:    cfg,
	}

	return cli.NewRootCmd(app).Execute()
}
