package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	storage      storage.LineStorage
	logger       *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	storage storage.LineStorage,
	logger *slog.Logger,
) employee.EmployeeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		storage:      storage,
		logger:       logger,
	}
}

// LoadFile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) LoadFile(ctx context.Context, path string) (employee.LoadSummary, error) {
	if path == "" {
		return employee.LoadSummary{}, fmt.Errorf("%w: no path given", employee.ErrMissingSource)
	}

	lines, err := s.storage.ReadLines(ctx, path)
	if err != nil {
		s.logger.Error("Failed to read employee source", "path", path, "error", err)
		if errors.Is(err, storage.ErrNotFound) {
			return employee.LoadSummary{Source: path}, fmt.Errorf("%w: %s", employee.ErrMissingSource, path)
		}
		return employee.LoadSummary{Source: path}, fmt.Errorf("%w: %s: %w", employee.ErrSourceUnreadable, path, err)
	}

	summary, err := s.Load(ctx, lines)
	summary.Source = path
	return summary, err
}

// Load implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Load(ctx context.Context, lines []string) (employee.LoadSummary, error) {
	var summary employee.LoadSummary
	if len(lines) == 0 {
		s.logger.Warn("Employee source has no header row")
	}

	employees := make([]employee.Employee, 0, len(lines))
	for i := 1; i < len(lines); i++ {
		row := i + 1

		emp, err := employee.ParseRecord(lines[i])
		if err != nil {
			if errors.Is(err, employee.ErrEmptyLine) {
				summary.BlankRows = append(summary.BlankRows, row)
				continue
			}
			var mre *employee.MalformedRecordError
			if !errors.As(err, &mre) {
				return employee.LoadSummary{}, fmt.Errorf("parse row %d: %w", row, err)
			}
			mre.Row = row
			summary.Malformed = append(summary.Malformed, mre)
			s.logger.Warn("Skipping malformed employee record", "row", row, "field", mre.Field, "value", mre.Value)
			continue
		}
		employees = append(employees, emp)
	}

	if err := s.employeeRepo.ReplaceAll(ctx, employees); err != nil {
		return employee.LoadSummary{}, fmt.Errorf("failed to store employees: %w", err)
	}
	summary.Loaded = len(employees)

	s.logger.Info("Loaded employee records",
		"loaded", summary.Loaded,
		"blank_rows", len(summary.BlankRows),
		"malformed", len(summary.Malformed),
	)
	return summary, nil
}
