package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("storage: file not found")
	ErrInvalidPath = errors.New("storage: invalid file path")
)

// LineStorage reads and appends newline-delimited text files. Every call
// acquires and releases its own file handle; nothing is held between calls.
type LineStorage interface {
	// ReadLines returns every line of the file at path, without line endings.
	ReadLines(ctx context.Context, path string) ([]string, error)

	// AppendLine appends one line to the file at path, creating it if needed.
	AppendLine(ctx context.Context, path string, line string) error

	// Exists reports whether anything is present at path.
	Exists(ctx context.Context, path string) (bool, error)
}
