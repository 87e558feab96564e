package employee

import "context"

// EmployeeRepository is the record store every report reads. It is filled
// once per load and exposes no per-record update or removal.
type EmployeeRepository interface {
	// ReplaceAll swaps the stored records for employees, keeping their order.
	ReplaceAll(ctx context.Context, employees []Employee) error
	List(ctx context.Context) ([]Employee, error)
}
