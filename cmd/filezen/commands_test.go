package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"filezen/internal/config"
	"filezen/internal/history"
	"filezen/internal/organize"
	"filezen/internal/preflight"
	"filezen/internal/testsupport"
)

func writeConfigFile(t *testing.T, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestScanCommandJSON(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.pdf", "README"} {
		testsupport.WriteFile(t, filepath.Join(dir, name), 8)
	}

	out, _, err := runCLI(t, "scan", dir, "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var summary scanSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if summary.Scanned != 4 {
		t.Fatalf("Scanned = %d, want 4", summary.Scanned)
	}
	keys := make([]string, 0, len(summary.Groups))
	for _, group := range summary.Groups {
		keys = append(keys, group.Key)
	}
	if got := strings.Join(keys, ","); got != "none,pdf,txt" {
		t.Fatalf("group keys = %q, want none,pdf,txt", got)
	}
}

func TestScanCommandRejectsMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)

	_, _, err := runCLI(t, "scan", filepath.Join(t.TempDir(), "missing"), "--config", cfgPath)
	if err == nil {
		t.Fatal("scan succeeded for a missing directory")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("error = %v", err)
	}
}

func TestOrganizeCommandMovesFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "photo.PNG", "README"} {
		testsupport.WriteFile(t, filepath.Join(dir, name), 8)
	}

	out, _, err := runCLI(t, "organize", dir, "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	var report organize.OrganizeReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if report.Moved != 3 {
		t.Fatalf("Moved = %d, want 3", report.Moved)
	}
	for _, rel := range []string{"TXT/a.txt", "PNG/photo.PNG", "OTHERS/README"} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
}

func TestOrganizeCommandRecordsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.txt"), 8)

	if _, _, err := runCLI(t, "organize", dir, "--config", cfgPath, "--json"); err != nil {
		t.Fatalf("organize: %v", err)
	}

	store := testsupport.MustOpenStore(t, cfg)
	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	if runs[0].Kind != organize.KindOrganize || runs[0].Moved != 1 || runs[0].Scanned != 1 {
		t.Fatalf("run = %+v", runs[0])
	}
	if runs[0].RunID == "" || runs[0].DetailJSON == "" {
		t.Fatalf("run missing run_id or detail: %+v", runs[0])
	}
}

func TestCleanCommandHonorsDaysFlag(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.log")
	fresh := filepath.Join(dir, "fresh.log")
	testsupport.WriteFile(t, stale, 8)
	testsupport.WriteFile(t, fresh, 8)
	testsupport.Touch(t, stale, time.Now().Add(-40*24*time.Hour))

	out, _, err := runCLI(t, "clean", dir, "--config", cfgPath, "--days", "30", "--json")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	var report organize.CleanReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(report.Deleted) != 1 || report.Deleted[0].Name != "stale.log" {
		t.Fatalf("Deleted = %+v, want only stale.log", report.Deleted)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh file must survive: %v", err)
	}
}

func TestRunCommandCleansThenOrganizes(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCleanup(30))
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.tmp")
	keep := filepath.Join(dir, "keep.txt")
	testsupport.WriteFile(t, stale, 8)
	testsupport.WriteFile(t, keep, 8)
	testsupport.Touch(t, stale, time.Now().Add(-60*24*time.Hour))

	out, _, err := runCLI(t, "run", dir, "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var result pipelineResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if result.Clean == nil || len(result.Clean.Deleted) != 1 {
		t.Fatalf("Clean = %+v, want one deletion", result.Clean)
	}
	if result.Organize == nil || result.Organize.Moved != 1 {
		t.Fatalf("Organize = %+v, want one move", result.Organize)
	}
	if _, err := os.Stat(filepath.Join(dir, "TXT", "keep.txt")); err != nil {
		t.Fatalf("expected TXT/keep.txt: %v", err)
	}

	logData, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "filezen.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	logText := string(logData)
	for _, field := range []string{"operation=clean", "operation=organize", "run_id="} {
		if !strings.Contains(logText, field) {
			t.Errorf("log file missing %q", field)
		}
	}
}

func TestHistoryCommandListsRecordedRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.txt"), 8)

	if _, _, err := runCLI(t, "organize", dir, "--config", cfgPath, "--json"); err != nil {
		t.Fatalf("organize: %v", err)
	}

	out, _, err := runCLI(t, "history", "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	var runs []history.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(runs) != 1 {
		t.Fatalf("history has %d runs, want 1", len(runs))
	}
	if runs[0].Kind != organize.KindOrganize || runs[0].Moved != 1 {
		t.Fatalf("run = %+v", runs[0])
	}
}

func TestHistoryClearCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.txt"), 8)

	if _, _, err := runCLI(t, "scan", dir, "--config", cfgPath, "--json"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	out, _, err := runCLI(t, "history", "clear", "--config", cfgPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	if !strings.Contains(out, "Removed 1 runs.") {
		t.Fatalf("output = %q", out)
	}
}

func TestHistoryDisabled(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.History.Enabled = false
	cfgPath := writeConfigFile(t, cfg)

	out, _, err := runCLI(t, "history", "--config", cfgPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "History is disabled") {
		t.Fatalf("output = %q", out)
	}
}

func TestStatusCommandJSON(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()

	out, _, err := runCLI(t, "status", dir, "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	var results []preflight.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("%s failed: %s", result.Name, result.Detail)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "conf", "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output = %q, want written path", out)
	}

	out, _, err = runCLI(t, "config", "show", "--config", target)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "[organize]") {
		t.Fatalf("output = %q, want TOML sections", out)
	}
}

func TestOrganizeCommandCollisionFlag(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "shot.png"), 8)
	testsupport.WriteFile(t, filepath.Join(dir, "PNG", "shot.png"), 8)

	out, _, err := runCLI(t, "organize", dir, "--config", cfgPath, "--collision", "skip", "--json")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	var report organize.OrganizeReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if report.Moved != 0 || report.Skipped != 1 {
		t.Fatalf("Moved = %d, Skipped = %d, want skip", report.Moved, report.Skipped)
	}
}

func TestOrganizeCommandCollisionFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCollision("overwrite"))
	cfgPath := writeConfigFile(t, cfg)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "shot.png"), 64)
	testsupport.WriteFile(t, filepath.Join(dir, "PNG", "shot.png"), 8)

	out, _, err := runCLI(t, "organize", dir, "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	var report organize.OrganizeReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if report.Moved != 1 || report.Skipped != 0 {
		t.Fatalf("Moved = %d, Skipped = %d, want overwrite move", report.Moved, report.Skipped)
	}
	info, err := os.Stat(filepath.Join(dir, "PNG", "shot.png"))
	if err != nil {
		t.Fatalf("stat destination: %v", err)
	}
	if info.Size() != 64 {
		t.Fatalf("destination size = %d, want 64", info.Size())
	}
}
