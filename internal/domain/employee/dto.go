package employee

import "fmt"

// LoadSummary reports the outcome of one load pass. Rows are 1-based line
// numbers in the source, the header being row 1.
type LoadSummary struct {
	Source    string
	Loaded    int
	BlankRows []int
	Malformed []*MalformedRecordError
}

func (s LoadSummary) Message() string {
	return fmt.Sprintf("Successfully loaded %d employees.", s.Loaded)
}
