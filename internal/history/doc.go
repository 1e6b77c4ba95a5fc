// Package history persists one record per completed scan, organize, or
// cleanup run in a local SQLite database.
//
// The store lives in the caller layer: the core passes stay stateless and
// the CLI decides whether a run is recorded. Records carry the run UUID,
// operation kind, base directory, timestamps, result counts, and a JSON
// detail blob for the full report.
package history
