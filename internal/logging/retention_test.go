package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func TestCleanupOldLogsRemovesOnlyExpiredMatches(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.log")
	fresh := filepath.Join(dir, "fresh.log")
	other := filepath.Join(dir, "state.db")
	writeAged(t, old, 40*24*time.Hour)
	writeAged(t, fresh, time.Hour)
	writeAged(t, other, 40*24*time.Hour)

	CleanupOldLogs(NewNop(), 30, RetentionTarget{Dir: dir, Pattern: "*.log"})

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatal("expired log file must be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh log file must be kept: %v", err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatalf("non-matching file must be kept: %v", err)
	}
}

func TestCleanupOldLogsHonorsExclusions(t *testing.T) {
	dir := t.TempDir()
	active := filepath.Join(dir, "filezen.log")
	writeAged(t, active, 60*24*time.Hour)

	CleanupOldLogs(NewNop(), 30, RetentionTarget{
		Dir:     dir,
		Pattern: "*.log",
		Exclude: []string{active},
	})

	if _, err := os.Stat(active); err != nil {
		t.Fatalf("excluded file must survive pruning: %v", err)
	}
}

func TestCleanupOldLogsZeroDaysDisables(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.log")
	writeAged(t, old, 365*24*time.Hour)

	CleanupOldLogs(NewNop(), 0, RetentionTarget{Dir: dir, Pattern: "*.log"})

	if _, err := os.Stat(old); err != nil {
		t.Fatalf("pruning must be disabled at 0 days: %v", err)
	}
}

func TestCleanupOldLogsSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "archive.log")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	mtime := time.Now().Add(-90 * 24 * time.Hour)
	if err := os.Chtimes(sub, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	CleanupOldLogs(NewNop(), 30, RetentionTarget{Dir: dir, Pattern: "*.log"})

	if _, err := os.Stat(sub); err != nil {
		t.Fatalf("directories must be ignored: %v", err)
	}
}
