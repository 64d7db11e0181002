package domain

import "time"

// Outcome is the result of a single-file invalidation.
type Outcome int

const (
	// OutcomeRemoved means the cache file existed and was deleted.
	OutcomeRemoved Outcome = iota + 1
	// OutcomeNotFound means there was no cache file to delete.
	OutcomeNotFound
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// SettleState represents the state of a settle poll.
type SettleState string

const (
	// StatePolling indicates the file is still changing.
	StatePolling SettleState = "Polling"
	// StateSettled indicates the file was last modified within the settle window.
	StateSettled SettleState = "Settled"
	// StateAborted indicates the poll hit its ceiling or was cancelled.
	StateAborted SettleState = "Aborted"
)

// SettleResult describes how a settle poll ended.
type SettleResult struct {
	State     SettleState
	Age       time.Duration
	Ticks     int
	Elapsed   time.Duration
	CachePath string
}
