package preflight

import (
	"path/filepath"
	"strings"
	"testing"

	"filezen/internal/testsupport"
)

func TestCheckDirectoryPasses(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectory("Target directory", dir)
	if !result.Passed {
		t.Fatalf("Passed = false: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, dir) {
		t.Fatalf("Detail = %q does not mention path", result.Detail)
	}
}

func TestCheckDirectoryMissing(t *testing.T) {
	result := CheckDirectory("Target directory", filepath.Join(t.TempDir(), "missing"))
	if result.Passed {
		t.Fatal("Passed = true for missing directory")
	}
	if !strings.Contains(result.Detail, "stat") {
		t.Fatalf("Detail = %q, want stat error", result.Detail)
	}
}

func TestCheckDirectoryRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	testsupport.WriteFile(t, path, 4)

	result := CheckDirectory("Target directory", path)
	if result.Passed {
		t.Fatal("Passed = true for a regular file")
	}
	if !strings.Contains(result.Detail, "not a directory") {
		t.Fatalf("Detail = %q", result.Detail)
	}
}

func TestCheckDirectoryUnconfigured(t *testing.T) {
	result := CheckDirectory("Target directory", "  ")
	if result.Passed {
		t.Fatal("Passed = true for empty path")
	}
	if result.Detail != "not configured" {
		t.Fatalf("Detail = %q, want not configured", result.Detail)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	result := CheckFreeSpace("Free space", t.TempDir())
	if !result.Passed {
		t.Fatalf("Passed = false: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "available") {
		t.Fatalf("Detail = %q", result.Detail)
	}
}

func TestCheckAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	base := t.TempDir()

	results := CheckAll(cfg, base)
	if len(results) != 3 {
		t.Fatalf("CheckAll returned %d results, want 3", len(results))
	}
	names := []string{"Target directory", "Free space", "Log directory"}
	for i, want := range names {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
		if !results[i].Passed {
			t.Errorf("%s failed: %s", want, results[i].Detail)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.in); got != tc.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
