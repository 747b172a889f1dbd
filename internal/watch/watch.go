// Package watch reruns a translation whenever its inputs change.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the descriptor file and the given module directories and
// calls regen after each relevant change, debounced, until ctx is cancelled.
// The descriptor's directory is watched rather than the file itself because
// editors typically replace files via rename, which drops a file-level watch;
// within it only the descriptor's own events count. Any change inside a
// module directory counts, since its headers feed the emitted option flags.
// Module directories that do not exist are skipped with a warning.
func Watch(ctx context.Context, projectFile string, moduleDirs []string, debounce time.Duration, logger *slog.Logger, regen func() error) error {
	abs, err := filepath.Abs(projectFile)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var watchedDirs []string
	for _, dir := range moduleDirs {
		if _, statErr := os.Stat(dir); statErr != nil {
			logger.Warn("watcher: skipping module dir",
				slog.String("dir", dir),
				slog.String("error", statErr.Error()))
			continue
		}
		if addErr := w.Add(dir); addErr != nil {
			logger.Warn("watcher: add module dir failed",
				slog.String("dir", dir),
				slog.String("error", addErr.Error()))
			continue
		}
		watchedDirs = append(watchedDirs, dir)
	}

	logger.Info("watcher: started",
		slog.String("file", abs),
		slog.Int("module_dirs", len(watchedDirs)))

	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	inModuleDir := func(name string) bool {
		for _, dir := range watchedDirs {
			if strings.HasPrefix(name, dir+string(os.PathSeparator)) {
				return true
			}
		}
		return false
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			if err := regen(); err != nil {
				logger.Warn("watcher: regeneration failed", slog.String("error", err.Error()))
				continue
			}
			logger.Info("watcher: regenerated", slog.String("file", abs))

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs && !inModuleDir(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
