package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filezen/internal/fileutil"
	"filezen/internal/logging"
)

// CollisionPolicy selects what happens when a move's destination name is
// already taken.
type CollisionPolicy string

const (
	// CollisionRename allocates a numbered "name-N.ext" destination.
	CollisionRename CollisionPolicy = "rename"
	// CollisionSkip leaves the source file in place and counts it as skipped.
	CollisionSkip CollisionPolicy = "skip"
	// CollisionOverwrite replaces the existing destination file.
	CollisionOverwrite CollisionPolicy = "overwrite"
)

// ParseCollisionPolicy validates a policy string from config or flags.
func ParseCollisionPolicy(value string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case CollisionRename, "":
		return CollisionRename, nil
	case CollisionSkip:
		return CollisionSkip, nil
	case CollisionOverwrite:
		return CollisionOverwrite, nil
	default:
		return "", Wrap(ErrConfiguration, "organize", fmt.Sprintf("unknown collision policy %q", value), nil)
	}
}

// Organizer moves a grouping's files into per-extension subfolders under the
// scanned base directory.
type Organizer struct {
	logger   *slog.Logger
	progress ProgressFunc
	policy   CollisionPolicy
}

// NewOrganizer constructs an organizer with the given collision policy.
// An empty policy defaults to CollisionRename.
func NewOrganizer(logger *slog.Logger, progress ProgressFunc, policy CollisionPolicy) *Organizer {
	if policy == "" {
		policy = CollisionRename
	}
	return &Organizer{logger: logging.NewComponentLogger(logger, "organizer"), progress: progress, policy: policy}
}

// Organize processes every group in grouping: optionally re-sorts the group
// ascending by current on-disk size, ensures the target subfolder exists,
// and moves each file into it. Per-file failures become report warnings and
// never abort the batch. The grouping's descriptors are stale afterwards and
// must not be reused.
func (o *Organizer) Organize(ctx context.Context, grouping *Grouping, sortBySize bool) (*OrganizeReport, error) {
	logger := logging.WithContext(ctx, o.logger)
	if grouping == nil || grouping.Empty() {
		report := newOrganizeReport(baseDirOf(grouping), sortBySize)
		report.finish()
		o.progress.sayf("Nothing to organize. (Did you scan?)")
		logger.Info("nothing to organize")
		return report, nil
	}

	report := newOrganizeReport(grouping.BaseDir, sortBySize)
	// A caller-supplied correlation ID wins; the report ID covers direct use.
	if _, ok := logging.RunIDFromContext(ctx); !ok {
		logger = logger.With(logging.String(logging.FieldRunID, report.RunID))
	}
	logger.Info(
		"starting organization",
		logging.String("dir", grouping.BaseDir),
		logging.Int("files", grouping.Total()),
		logging.Bool("sort_by_size", sortBySize),
	)

	for _, key := range grouping.Keys() {
		items := grouping.Groups[key]
		if sortBySize {
			items = sortGroupBySize(items)
		}

		folder := FolderName(key)
		result := GroupResult{Key: key, Folder: folder}
		targetDir := filepath.Join(grouping.BaseDir, folder)
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			o.progress.sayf("[WARN] Cannot create folder %s: %v", folder, err)
			logger.Warn("target folder creation failed", logging.String("folder", folder), logging.Error(err))
			report.Warnings = append(report.Warnings, Warning{Name: folder, Detail: err.Error()})
			report.Groups = append(report.Groups, result)
			continue
		}

		for _, item := range items {
			moved, skipped, err := o.moveOne(item, targetDir)
			switch {
			case err != nil:
				o.progress.sayf("[WARN] Failed to move %s: %v", item.Name, err)
				logger.Warn("move failed", logging.String("file", item.Name), logging.Error(err))
				report.Warnings = append(report.Warnings, Warning{Name: item.Name, Detail: err.Error()})
			case skipped:
				o.progress.sayf("Skipped (exists): %s", item.Name)
				result.Skipped++
				report.Skipped++
			default:
				o.progress.sayf("Moved: %s  →  %s", item.Name, moved)
				result.Moved++
				report.Moved++
			}
		}
		report.Groups = append(report.Groups, result)
	}

	report.finish()
	o.progress.sayf("Organization complete: %d moved, %d warnings.", report.Moved, len(report.Warnings))
	logger.Info(
		"organization completed",
		logging.Int("moved", report.Moved),
		logging.Int("skipped", report.Skipped),
		logging.Int("warnings", len(report.Warnings)),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

// moveOne moves item into targetDir, applying the collision policy. It
// returns the destination path on success or skipped=true when the policy
// elected to leave the file in place.
func (o *Organizer) moveOne(item FileDescriptor, targetDir string) (dest string, skipped bool, err error) {
	dst := filepath.Join(targetDir, item.Name)
	if _, lerr := os.Lstat(dst); lerr == nil {
		switch o.policy {
		case CollisionSkip:
			return "", true, nil
		case CollisionOverwrite:
			// fall through to the plain move; rename replaces the target
		default:
			dst, err = fileutil.UniquePath(targetDir, item.Name)
			if err != nil {
				return "", false, err
			}
		}
	} else if !os.IsNotExist(lerr) {
		return "", false, lerr
	}
	if err := fileutil.MoveFile(item.Path, dst); err != nil {
		return "", false, err
	}
	return dst, false, nil
}

// sortGroupBySize orders items ascending by current on-disk size, read at
// sort time rather than scan time. Files whose size can no longer be read
// are dropped from the group before sorting.
func sortGroupBySize(items []FileDescriptor) []FileDescriptor {
	type sized struct {
		item FileDescriptor
		size int64
	}
	kept := make([]sized, 0, len(items))
	for _, item := range items {
		info, err := os.Stat(item.Path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		kept = append(kept, sized{item: item, size: info.Size()})
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].size < kept[j].size })
	out := make([]FileDescriptor, len(kept))
	for i, s := range kept {
		out[i] = s.item
	}
	return out
}

func baseDirOf(grouping *Grouping) string {
	if grouping == nil {
		return ""
	}
	return grouping.BaseDir
}
