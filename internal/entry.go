// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jucetools/jucer2cmake/internal/cmake"
	"github.com/jucetools/jucer2cmake/internal/jucer"
	"github.com/jucetools/jucer2cmake/internal/storage"
	"github.com/jucetools/jucer2cmake/internal/watch"
)

// Run performs the translation with the given options. In watch mode it keeps
// regenerating the output until the context is cancelled or a shutdown signal
// arrives.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.projectFile == "" || app.reprojucerFile == "" {
		return fmt.Errorf("project and Reprojucer.cmake paths are required")
	}

	cfg := app.config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	store, err := storage.NewDir(filepath.Dir(app.projectFile))
	if err != nil {
		return err
	}

	var lastProject *jucer.Node

	translate := func() error {
		project, err := jucer.ParseFile(app.projectFile)
		if err != nil {
			return err
		}
		lastProject = project

		script, err := cmake.Translate(project, cmake.Params{
			ProjectFile:    app.projectFile,
			ReprojucerFile: app.reprojucerFile,
			WorkDir:        workDir,
			Store:          store,
			IncludeRoot:    cfg.Groups.IncludeRoot,
		})
		if err != nil {
			return err
		}

		if err := storage.WriteAtomic(cfg.Output.Filename, script.Render()); err != nil {
			return err
		}

		logger.Info("wrote build script",
			slog.String("project", app.projectFile),
			slog.String("output", cfg.Output.Filename))
		return nil
	}

	if err := translate(); err != nil {
		return err
	}

	if !app.watch {
		return nil
	}

	moduleDirs := cmake.ModuleDirs(lastProject, store.Root())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		return watch.Watch(gCtx, app.projectFile, moduleDirs, debounce, logger, translate)
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))
			return context.Canceled
		case <-gCtx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
