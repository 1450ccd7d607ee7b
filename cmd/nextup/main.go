package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/nextup/internal/cli"
	"github.com/alexanderramin/nextup/internal/db"
	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/alexanderramin/nextup/internal/source"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.nextup/nextup.db
	dbPath := os.Getenv("NEXTUP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".nextup", "nextup.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cfg := source.LoadConfig()

	// Wire the module cache and the external clients.
	cache := repository.NewSQLiteModuleCacheRepo(database, time.Duration(cfg.CacheTTLHours)*time.Hour)
	// Expired rows are dead weight; clearing them is best effort.
	_, _ = cache.Prune(context.Background())
	builder := source.NewBuilder(cfg, source.NewNUSModsClient(cfg), source.NewCanvasClient(cfg), cache)

	// Optional use-case logging to stderr.
	observer := service.UseCaseObserver(service.NoopUseCaseObserver{})
	if os.Getenv("NEXTUP_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Sync:      service.NewSyncService(builder, cfg, observer),
		Timetable: service.NewTimetableService(builder, cfg),
		RightNow:  service.NewRightNowService(builder, cfg, observer),
		Config:    cfg,
	}

	// Detect interactive terminal for wizard forms and the Right Now loop.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
