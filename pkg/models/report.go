package models

import "time"

// SyncReport summarizes one indexer run for operators.
type SyncReport struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Total     int           `json:"total"`
	New       int           `json:"new"`
	Updated   int           `json:"updated"`
	Skipped   int           `json:"skipped"` // malformed upstream records dropped during mapping
	Partial   bool          `json:"partial"` // pagination aborted early, results incomplete
}
