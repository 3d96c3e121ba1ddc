package domain

import "time"

// CostEntry is one recorded spend against a task. Entries are append-only;
// the ledger's view of "actual cost" at a date is the cumulative sum of
// entries recorded on or before it.
type CostEntry struct {
	ID         string
	TaskID     string
	Amount     float64
	RecordedAt time.Time
	Note       string
	CreatedAt  time.Time
}
