package organize

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"filezen/internal/logging"
)

// Replaceable clock so tests can pin the threshold boundary exactly.
var nowFunc = time.Now

// SetNowForTests overrides the cleaner's clock and returns a restore func.
func SetNowForTests(fn func() time.Time) func() {
	previous := nowFunc
	nowFunc = fn
	return func() { nowFunc = previous }
}

// Cleaner deletes regular files whose age strictly exceeds a day threshold.
// Deletion is irreversible at this layer; any confirmation belongs to the
// caller.
type Cleaner struct {
	logger   *slog.Logger
	progress ProgressFunc
}

// NewCleaner constructs a cleaner. logger and progress may both be nil.
func NewCleaner(logger *slog.Logger, progress ProgressFunc) *Cleaner {
	return &Cleaner{logger: logging.NewComponentLogger(logger, "cleaner"), progress: progress}
}

// CleanOldFiles removes dir's immediate regular-file children older than
// maxAgeDays. A file exactly at the threshold is kept; one strictly older is
// deleted. Per-file failures are recorded as warnings and the pass
// continues; only a listing failure aborts with ErrDirectoryAccess and an
// empty report.
func (c *Cleaner) CleanOldFiles(ctx context.Context, dir string, maxAgeDays int) (*CleanReport, error) {
	logger := logging.WithContext(ctx, c.logger)
	base := filepath.Clean(dir)
	report := newCleanReport(base, maxAgeDays)

	if maxAgeDays <= 0 {
		report.finish()
		return report, Wrap(ErrValidation, "clean", "max age must be a positive number of days", nil)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		report.finish()
		c.progress.sayf("[ERROR] Cannot list directory: %v", err)
		logger.Error("directory listing failed", logging.String("dir", base), logging.Error(err))
		return report, Wrap(ErrDirectoryAccess, "clean", "list directory", err)
	}

	now := nowFunc()
	threshold := time.Duration(maxAgeDays) * 24 * time.Hour
	if _, ok := logging.RunIDFromContext(ctx); !ok {
		logger = logger.With(logging.String(logging.FieldRunID, report.RunID))
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		info, err := entry.Info()
		if err != nil {
			c.progress.sayf("[WARN] Could not handle %s: %v", name, err)
			logger.Warn("stat failed", logging.String("file", name), logging.Error(err))
			report.Warnings = append(report.Warnings, Warning{Name: name, Detail: err.Error()})
			continue
		}
		age := now.Sub(info.ModTime())
		if age <= threshold {
			continue
		}
		if err := os.Remove(filepath.Join(base, name)); err != nil {
			c.progress.sayf("[WARN] Could not handle %s: %v", name, err)
			logger.Warn("delete failed", logging.String("file", name), logging.Error(err))
			report.Warnings = append(report.Warnings, Warning{Name: name, Detail: err.Error()})
			continue
		}
		ageDays := age.Hours() / 24
		c.progress.sayf("Deleted old file (%.1f days): %s", ageDays, name)
		logger.Info("deleted old file", logging.String("file", name), logging.Float64("age_days", ageDays))
		report.Deleted = append(report.Deleted, DeletedFile{Name: name, AgeDays: ageDays})
	}

	report.finish()
	c.progress.sayf("Old-file cleanup complete: %d files removed.", len(report.Deleted))
	logger.Info(
		"cleanup completed",
		logging.Int("deleted", len(report.Deleted)),
		logging.Int("warnings", len(report.Warnings)),
	)
	return report, nil
}
