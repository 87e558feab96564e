package employee

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLine        = errors.New("employee: empty line")
	ErrMalformedRecord  = errors.New("employee: malformed record")
	ErrMissingSource    = errors.New("employee: source file not found")
	ErrSourceUnreadable = errors.New("employee: source file unreadable")
)

// MalformedRecordError identifies the row and field that failed to parse.
// Row is zero until the loader assigns the source line number.
type MalformedRecordError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	if e.Row > 0 {
		return fmt.Sprintf("malformed data at row %d: %s", e.Row, msg)
	}
	return "malformed data: " + msg
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
