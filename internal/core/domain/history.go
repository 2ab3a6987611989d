package domain

import "time"

// HistoryEntry records one settled search attempt in the local history
// store. Refused submits (empty query, unsatisfied gate) are not
// recorded; only attempts that actually reached the network are.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Query is the submitted query text.
	Query string

	// Outcome is the pipeline state the attempt settled in.
	Outcome PipelineState

	// ResultCount is the number of records returned on success.
	ResultCount int

	// Err is the error message on failure, empty on success.
	Err string

	// CreatedAt is when the attempt settled.
	CreatedAt time.Time
}
