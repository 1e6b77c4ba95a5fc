package organize

import (
	"time"

	"github.com/google/uuid"
)

// Operation kinds recorded in reports and the history store.
const (
	KindScan     = "scan"
	KindOrganize = "organize"
	KindClean    = "clean"
)

// Warning records a recovered per-file failure.
type Warning struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// GroupResult summarizes one extension group after an organize pass.
type GroupResult struct {
	Key     string `json:"key"`
	Folder  string `json:"folder"`
	Moved   int    `json:"moved"`
	Skipped int    `json:"skipped"`
}

// OrganizeReport describes one organize pass.
type OrganizeReport struct {
	RunID      string        `json:"run_id"`
	BaseDir    string        `json:"base_dir"`
	SortBySize bool          `json:"sort_by_size"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Groups     []GroupResult `json:"groups"`
	Moved      int           `json:"moved"`
	Skipped    int           `json:"skipped"`
	Warnings   []Warning     `json:"warnings"`
}

func newOrganizeReport(baseDir string, sortBySize bool) *OrganizeReport {
	return &OrganizeReport{
		RunID:      uuid.NewString(),
		BaseDir:    baseDir,
		SortBySize: sortBySize,
		StartedAt:  time.Now().UTC(),
	}
}

func (r *OrganizeReport) finish() {
	r.FinishedAt = time.Now().UTC()
}

// DeletedFile records one file removed by the cleanup pass.
type DeletedFile struct {
	Name    string  `json:"name"`
	AgeDays float64 `json:"age_days"`
}

// CleanReport describes one cleanup pass.
type CleanReport struct {
	RunID      string        `json:"run_id"`
	BaseDir    string        `json:"base_dir"`
	MaxAgeDays int           `json:"max_age_days"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Deleted    []DeletedFile `json:"deleted"`
	Warnings   []Warning     `json:"warnings"`
}

func newCleanReport(baseDir string, maxAgeDays int) *CleanReport {
	return &CleanReport{
		RunID:      uuid.NewString(),
		BaseDir:    baseDir,
		MaxAgeDays: maxAgeDays,
		StartedAt:  time.Now().UTC(),
	}
}

func (r *CleanReport) finish() {
	r.FinishedAt = time.Now().UTC()
}
