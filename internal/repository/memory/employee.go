package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
)

type employeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
}

// NewEmployeeRepository returns an empty in-memory record store.
func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]employee.Employee, len(employees))
	copy(stored, employees)

	r.mu.Lock()
	r.employees = stored
	r.mu.Unlock()
	return nil
}

// List returns a copy of the records in load order.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}
