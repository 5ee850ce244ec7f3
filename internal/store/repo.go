package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// KVRepo is a small string key-value store.
type KVRepo interface {
	// Get returns the value for name and whether it exists.
	Get(ctx context.Context, name string) (string, bool, error)

	// Put creates or replaces the value for name.
	Put(ctx context.Context, name, value string) error

	// Delete removes name. Missing names are not an error.
	Delete(ctx context.Context, name string) error
}

// CompletionEventData is recorded each time a word is spelled correctly.
type CompletionEventData struct {
	SessionID  string
	WordKey    string
	Mistakes   int
	DurationMs int64
}

// CompletionRecord is a stored completion event.
type CompletionRecord struct {
	ID         int
	Timestamp  time.Time
	SessionID  string
	WordKey    string
	Mistakes   int
	DurationMs int64
}

// WordStat aggregates completions of one word.
type WordStat struct {
	WordKey       string
	Completions   int
	TotalMistakes int
	BestMs        int64
}

// EventRepo provides append and query access to completion events.
type EventRepo interface {
	// AppendCompletion records a finished word.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// QueryCompletions returns events newest first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error)

	// WordStats returns per-word aggregates, most practiced first.
	WordStats(ctx context.Context) ([]WordStat, error)

	// ClearCompletions deletes every event.
	ClearCompletions(ctx context.Context) error
}
