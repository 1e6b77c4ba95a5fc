package history

import "time"

// Run is one recorded operation.
type Run struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	Kind       string    `json:"kind"`
	BaseDir    string    `json:"base_dir"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Scanned    int       `json:"scanned"`
	Moved      int       `json:"moved"`
	Deleted    int       `json:"deleted"`
	Warnings   int       `json:"warnings"`
	DetailJSON string    `json:"detail_json,omitempty"`
}

// Elapsed returns the run's wall-clock duration.
func (r Run) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
