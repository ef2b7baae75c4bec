package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/S1riyS/os-course-lab-4/journalfs/internal/app"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/config"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/journal"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/repository"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/service"
	"github.com/S1riyS/os-course-lab-4/journalfs/pkg/logging"
	"github.com/S1riyS/os-course-lab-4/journalfs/pkg/logging/slogext"
	"github.com/S1riyS/os-course-lab-4/journalfs/pkg/logging/slogpretty"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(config.ResolvePath(*configPath))

	logger := setupLogger(cfg.Log)

	// Root context
	ctx := context.Background()
	ctx = logging.MakeContextWithLogger(ctx, logger)
	ctx = logging.MakeContextWithNewRunID(ctx)

	logging.GetLoggerFromContext(ctx).Debug("Config loaded",
		slog.String("env", cfg.App.Env),
		slog.Bool("strict_undo", cfg.Journal.StrictUndo),
	)

	// Dependencies
	table := repository.NewInodeTable()
	fs := service.NewFileSystemService(
		repository.NewFilesystemRepository(table),
		repository.NewInodeRepository(table),
		repository.NewDirectoryRepository(table),
		repository.NewContentRepository(table),
		journal.New(),
		service.WithStrictUndo(cfg.Journal.StrictUndo),
	)

	if err := app.RunDemo(ctx, os.Stdout, fs); err != nil {
		logging.GetLoggerFromContext(ctx).Error("Demo failed", slogext.Err(err))
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	slogOpts := &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}

	if !cfg.Pretty() {
		return slog.New(slog.NewJSONHandler(os.Stderr, slogOpts))
	}

	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: slogOpts,
	}

	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
