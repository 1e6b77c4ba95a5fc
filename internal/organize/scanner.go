package organize

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"filezen/internal/logging"
)

// Scanner builds the extension grouping for a directory. Scans are read-only
// and non-recursive: only immediate children that are regular files are
// considered, so symlinks, subdirectories, and special files never enter a
// grouping.
type Scanner struct {
	logger   *slog.Logger
	progress ProgressFunc
}

// NewScanner constructs a scanner. logger may be nil for a silent scanner;
// progress may be nil when no caller log surface exists.
func NewScanner(logger *slog.Logger, progress ProgressFunc) *Scanner {
	return &Scanner{logger: logging.NewComponentLogger(logger, "scanner"), progress: progress}
}

// Scan lists dir's immediate children and groups every regular file by its
// extension key. It returns the grouping plus, on listing failure, an
// ErrDirectoryAccess-tagged error alongside an empty grouping so callers can
// report zero progress without special cases.
func (s *Scanner) Scan(ctx context.Context, dir string) (*Grouping, error) {
	logger := logging.WithContext(ctx, s.logger)
	base := filepath.Clean(dir)
	grouping := NewGrouping(base)

	entries, err := os.ReadDir(base)
	if err != nil {
		s.progress.sayf("[ERROR] Cannot list directory: %v", err)
		logger.Error("directory listing failed", logging.String("dir", base), logging.Error(err))
		return grouping, Wrap(ErrDirectoryAccess, "scan", "list directory", err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		grouping.Add(FileDescriptor{
			Path: filepath.Join(base, name),
			Name: name,
			Ext:  ExtKey(name),
		})
	}

	keys := grouping.Keys()
	s.progress.sayf("Scanned: %d files", grouping.Total())
	if len(keys) > 0 {
		s.progress.sayf("Groups : %s", strings.Join(keys, ", "))
	} else {
		s.progress.sayf("Groups : (none)")
	}
	logger.Info(
		"scan completed",
		logging.String("dir", base),
		logging.Int("files", grouping.Total()),
		logging.Int("groups", len(keys)),
	)
	return grouping, nil
}
