package employee

import "context"

type EmployeeService interface {
	// Load parses lines (the first is a header and is discarded) and replaces
	// the record store with every line that parsed.
	Load(ctx context.Context, lines []string) (LoadSummary, error)

	// LoadFile reads path from storage and loads it. The store is left
	// untouched when the file is missing or unreadable.
	LoadFile(ctx context.Context, path string) (LoadSummary, error)
}
