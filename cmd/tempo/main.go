package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/dmarchetti/tempo/internal/cli"
	"github.com/dmarchetti/tempo/internal/db"
	"github.com/dmarchetti/tempo/internal/engine"
	"github.com/dmarchetti/tempo/internal/repository"
	"github.com/dmarchetti/tempo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempo/tempo.db
	dbPath := os.Getenv("TEMPO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempo", "tempo.db")
	}

	// Disable styling when output is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	calendarRepo := repository.NewSQLiteCalendarRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	deadlineRepo := repository.NewSQLiteDeadlineRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	cacheRepo := repository.NewSQLiteRunCacheRepo(database)

	cfg := engine.LoadConfig()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("TEMPO_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Runs: service.NewRunService(
			sessionRepo, calendarRepo, taskRepo, goalRepo, deadlineRepo, projectRepo,
			cacheRepo, cfg, observer,
		),
		Insights: service.NewInsightService(sessionRepo, calendarRepo, cfg, observer),
		Ingest: service.NewIngestService(
			sessionRepo, calendarRepo, taskRepo, goalRepo, deadlineRepo, projectRepo,
		),
	}

	return cli.NewRootCmd(app).Execute()
}
