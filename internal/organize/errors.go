package organize

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for operation-level failures. Per-file failures during a
// batch are never surfaced as errors; they are aggregated into report
// warnings instead.
var (
	// ErrDirectoryAccess marks a directory that could not be listed. The
	// affected operation aborts early with zero progress.
	ErrDirectoryAccess = errors.New("directory access error")
	// ErrValidation marks rejected caller input such as a non-positive age
	// threshold.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks an unusable option value such as an unknown
	// collision policy.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap tags err with one of the sentinel markers above and an
// operation-scoped detail message so callers can classify failures with
// errors.Is while keeping readable output.
func Wrap(marker error, operation, message string, err error) error {
	if marker == nil {
		marker = ErrDirectoryAccess
	}
	detail := buildDetail(operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
