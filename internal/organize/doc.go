// Package organize implements the scan, organize, and cleanup passes over a
// target directory.
//
// A scan lists the directory's immediate regular files and groups them by
// lowercase extension into a Grouping. Organize consumes one Grouping and
// moves every file into a subfolder named after its extension, creating the
// folder when missing and applying the configured collision policy. The
// cleanup pass deletes regular files whose age strictly exceeds a day
// threshold.
//
// Each operation runs single-threaded to completion and treats the
// filesystem as the only source of truth: only a directory-level listing
// failure aborts an operation, while per-file failures are recorded as
// report warnings and the batch continues. Progress strings for a caller's
// log surface are delivered through an optional ProgressFunc; structured
// logging goes through the injected slog logger.
package organize
