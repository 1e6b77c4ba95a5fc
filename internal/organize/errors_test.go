package organize

import (
	"errors"
	"io/fs"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := fs.ErrPermission
	err := Wrap(ErrDirectoryAccess, "scan", "list directory", cause)
	if !errors.Is(err, ErrDirectoryAccess) {
		t.Fatalf("errors.Is(err, ErrDirectoryAccess) = false for %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false for %v", err)
	}
	want := "directory access error: scan: list directory: permission denied"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrValidation, "clean", "max age must be a positive number of days", nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false for %v", err)
	}
	want := "validation error: clean: max age must be a positive number of days"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaults(t *testing.T) {
	err := Wrap(nil, "", "", nil)
	if !errors.Is(err, ErrDirectoryAccess) {
		t.Fatalf("nil marker should default to ErrDirectoryAccess, got %v", err)
	}
	want := "directory access error: operation failure"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
