// Package preflight verifies environment prerequisites before operations
// run: target-directory access and available disk space.
package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"filezen/internal/config"
)

// Result captures a single preflight check outcome.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// CheckDirectory verifies path exists, is a directory, and carries
// read/write/execute permission for the current user.
func CheckDirectory(name, path string) Result {
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace reports the filesystem space available at path. Organizing
// normally renames in place, but the cross-device fallback copies, so a
// full volume is worth surfacing before a run.
func CheckFreeSpace(name, path string) Result {
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	available := stat.Bavail * uint64(stat.Bsize)
	return Result{
		Name:   name,
		Passed: available > 0,
		Detail: fmt.Sprintf("%s (%s available)", path, formatBytes(available)),
	}
}

// CheckAll evaluates every preflight requirement for the given config and
// target directory.
func CheckAll(cfg *config.Config, baseDir string) []Result {
	results := []Result{
		CheckDirectory("Target directory", baseDir),
		CheckFreeSpace("Free space", baseDir),
	}
	if cfg != nil {
		results = append(results, CheckDirectory("Log directory", cfg.Paths.LogDir))
	}
	return results
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
