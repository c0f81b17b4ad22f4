package history

import (
	"errors"
	"time"
)

// Status is the outcome of a run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrNotFound reports that no run matches the requested ID.
var ErrNotFound = errors.New("run not found")

// ErrEmptyID reports a lookup without a run ID.
var ErrEmptyID = errors.New("run id is required")

// ErrAmbiguousID reports that an ID prefix matches more than one run.
var ErrAmbiguousID = errors.New("run id prefix is ambiguous")

// Run is one recorded conversion.
type Run struct {
	ID           string    `json:"id" yaml:"id"`
	InputPath    string    `json:"input_path" yaml:"input_path"`
	Status       Status    `json:"status" yaml:"status"`
	Style        string    `json:"style,omitempty" yaml:"style,omitempty"`
	Slots        int       `json:"slots" yaml:"slots"`
	Boundaries   int       `json:"boundaries" yaml:"boundaries"`
	Cues         int       `json:"cues" yaml:"cues"`
	Evictions    int       `json:"evictions" yaml:"evictions"`
	Preloads     int       `json:"preloads" yaml:"preloads"`
	Stalls       int       `json:"stalls" yaml:"stalls"`
	TotalTicks   int       `json:"total_ticks" yaml:"total_ticks"`
	SwapsPath    string    `json:"swaps_path,omitempty" yaml:"swaps_path,omitempty"`
	SectionsPath string    `json:"sections_path,omitempty" yaml:"sections_path,omitempty"`
	ErrorMessage string    `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt    time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt   time.Time `json:"finished_at" yaml:"finished_at"`
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
