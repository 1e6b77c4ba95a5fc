package organize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"filezen/internal/testsupport"
)

func TestScanGroupsByLowercaseExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.D", "b.d", "photo.PNG", "shot.png", "README", "notes."} {
		testsupport.WriteFile(t, filepath.Join(dir, name), 8)
	}

	scanner := NewScanner(nil, nil)
	grouping, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if grouping.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", grouping.Total())
	}
	want := []string{"d", "none", "png"}
	if got := grouping.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if n := len(grouping.Groups["d"]); n != 2 {
		t.Fatalf("d group has %d files, want 2", n)
	}
	if n := len(grouping.Groups["none"]); n != 2 {
		t.Fatalf("none group has %d files, want 2", n)
	}
}

func TestScanSkipsDirectoriesAndSymlinks(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "keep.txt"), 4)
	if err := os.Mkdir(filepath.Join(dir, "sub.dir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "keep.txt"), filepath.Join(dir, "link.txt")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	scanner := NewScanner(nil, nil)
	grouping, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if grouping.Total() != 1 {
		t.Fatalf("Total() = %d, want 1", grouping.Total())
	}
	if len(grouping.Groups["txt"]) != 1 || grouping.Groups["txt"][0].Name != "keep.txt" {
		t.Fatalf("txt group = %+v, want only keep.txt", grouping.Groups["txt"])
	}
}

func TestScanEmitsProgressLines(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "one.txt"), 4)
	testsupport.WriteFile(t, filepath.Join(dir, "two.pdf"), 4)

	var lines []string
	scanner := NewScanner(nil, func(line string) { lines = append(lines, line) })
	if _, err := scanner.Scan(context.Background(), dir); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{"Scanned: 2 files", "Groups : pdf, txt"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("progress lines = %v, want %v", lines, want)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	scanner := NewScanner(nil, nil)
	grouping, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrDirectoryAccess) {
		t.Fatalf("Scan error = %v, want ErrDirectoryAccess", err)
	}
	if grouping == nil || !grouping.Empty() {
		t.Fatalf("grouping = %+v, want empty", grouping)
	}
}
