package models

import "time"

// MileageEvent is the summary of one tracking run, written once when the run stops.
type MileageEvent struct {
	ID        int64     `json:"id"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Miles     float64   `json:"miles"`
}
