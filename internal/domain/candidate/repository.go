package candidate

import "context"

// CandidateLog is the append-only candidate log.
type CandidateLog interface {
	Append(ctx context.Context, c Candidate) error
}

// RejectionLog is the append-only rejection log. It is the only source of
// truth for the Pareto breakdown.
type RejectionLog interface {
	Append(ctx context.Context, e RejectionEvent) error

	// ReadReasons returns the reason field of every well-formed line, in file
	// order. A log that does not exist yet yields ErrNoHistory.
	ReadReasons(ctx context.Context) ([]string, error)
}
