package domain

import "time"

// FailedURL pairs an ingestion failure with its cause.
type FailedURL struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// IngestResult classifies every processed URL exactly once.
type IngestResult struct {
	Total    int           `json:"total"`
	Success  []string      `json:"success"`
	Skipped  []string      `json:"skipped"`
	Failed   []FailedURL   `json:"failed"`
	Duration time.Duration `json:"duration"`
}

func (r *IngestResult) Added() int {
	return len(r.Success)
}

// BatchResult holds the counters of one sentiment batch.
type BatchResult struct {
	Selected  int `json:"selected"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Progressed reports whether at least one row was scored.
func (r *BatchResult) Progressed() bool {
	return r.Succeeded > 0
}

func (r *BatchResult) Add(other *BatchResult) {
	r.Selected += other.Selected
	r.Succeeded += other.Succeeded
	r.Failed += other.Failed
	r.Skipped += other.Skipped
}
