package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"filezen/internal/config"
	"filezen/internal/logging"
)

// Pipeline runs one full pass over the watched directory (optional cleanup,
// then scan, then organize). The watcher never inspects its result beyond
// logging: a failed pass is retried on the next settled poll.
type Pipeline func(ctx context.Context) error

// Watcher polls a directory and triggers the pipeline once loose files have
// settled. A lock file enforces a single watcher per machine so two
// instances never organize the same directory concurrently.
type Watcher struct {
	cfg      *config.Config
	logger   *slog.Logger
	run      Pipeline
	baseDir  string
	lockPath string
	lock     *flock.Flock
}

// New constructs a watcher over baseDir.
func New(cfg *config.Config, baseDir string, logger *slog.Logger, run Pipeline) (*Watcher, error) {
	if cfg == nil || run == nil {
		return nil, errors.New("watcher requires config and pipeline")
	}
	if baseDir == "" {
		return nil, errors.New("watcher requires a target directory")
	}
	lockPath := filepath.Join(cfg.Paths.LogDir, "filezen-watch.lock")
	return &Watcher{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "watcher"),
		run:      run,
		baseDir:  filepath.Clean(baseDir),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// LockPath returns the lock file location.
func (w *Watcher) LockPath() string {
	return w.lockPath
}

// Run acquires the watcher lock and polls until ctx is cancelled. It returns
// an error when the lock is held elsewhere or a poll hits a listing failure
// repeatedly enough to matter; context cancellation is a clean stop.
func (w *Watcher) Run(ctx context.Context) error {
	ok, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire watch lock: %w", err)
	}
	if !ok {
		return errors.New("another filezen watcher is already running")
	}
	defer func() {
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn("failed to release watch lock", logging.Error(err))
		}
	}()

	interval := time.Duration(w.cfg.Watch.PollInterval) * time.Second
	settle := time.Duration(w.cfg.Watch.SettleSeconds) * time.Second
	w.logger.Info(
		"watcher started",
		logging.String("dir", w.baseDir),
		logging.Duration("poll_interval", interval),
		logging.Duration("settle", settle),
		logging.String("lock", w.lockPath),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return nil
		case <-ticker.C:
			ready, err := w.settled(settle)
			if err != nil {
				w.logger.Warn("poll failed", logging.Error(err))
				continue
			}
			if !ready {
				continue
			}
			if err := w.run(ctx); err != nil {
				w.logger.Error("pipeline pass failed", logging.Error(err))
			}
		}
	}
}

// settled reports whether the directory holds loose regular files whose
// newest modification time is at least settle old. Waiting out the settle
// window avoids moving a file that is still being downloaded or written.
func (w *Watcher) settled(settle time.Duration) (bool, error) {
	entries, err := os.ReadDir(w.baseDir)
	if err != nil {
		return false, err
	}
	var newest time.Time
	count := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		count++
		if mod := info.ModTime(); mod.After(newest) {
			newest = mod
		}
	}
	if count == 0 {
		return false, nil
	}
	return time.Since(newest) >= settle, nil
}
