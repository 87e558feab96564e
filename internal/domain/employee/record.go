package employee

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

// RecordFields is the fixed arity of an employee source line:
// id, full name, gender, department, role, joining date, basic salary, status.
const RecordFields = 8

const (
	fieldID = iota
	fieldFullName
	fieldGender
	fieldDepartment
	fieldRole
	fieldJoiningDate
	fieldBasicSalary
	fieldStatus
)

var errNegativeSalary = errors.New("salary must not be negative")

// ParseRecord converts one comma-separated source line into an Employee.
// Fields are positional and unquoted; an embedded comma shifts the arity and
// fails the record. A blank line yields ErrEmptyLine, any other failure a
// *MalformedRecordError, and never a partially filled Employee.
func ParseRecord(line string) (Employee, error) {
	if strings.TrimSpace(line) == "" {
		return Employee{}, ErrEmptyLine
	}

	parts := strings.Split(line, ",")
	if len(parts) != RecordFields {
		return Employee{}, &MalformedRecordError{
			Field: "record",
			Value: line,
			Err:   fmt.Errorf("expected %d fields, got %d", RecordFields, len(parts)),
		}
	}

	joiningDate, err := time.Parse(validator.DateLayout, strings.TrimSpace(parts[fieldJoiningDate]))
	if err != nil {
		return Employee{}, &MalformedRecordError{Field: "joining_date", Value: parts[fieldJoiningDate], Err: err}
	}

	salary, err := decimal.NewFromString(strings.TrimSpace(parts[fieldBasicSalary]))
	if err != nil {
		return Employee{}, &MalformedRecordError{Field: "basic_salary", Value: parts[fieldBasicSalary], Err: err}
	}
	if salary.IsNegative() {
		return Employee{}, &MalformedRecordError{Field: "basic_salary", Value: parts[fieldBasicSalary], Err: errNegativeSalary}
	}

	return Employee{
		ID:          parts[fieldID],
		FullName:    parts[fieldFullName],
		Gender:      ParseGender(parts[fieldGender]),
		Department:  parts[fieldDepartment],
		Role:        parts[fieldRole],
		JoiningDate: joiningDate,
		BasicSalary: salary,
		Status:      ParseStatus(parts[fieldStatus]),
	}, nil
}

// FormatRecord renders e in the source line format accepted by ParseRecord.
func FormatRecord(e Employee) string {
	return strings.Join([]string{
		e.ID,
		e.FullName,
		e.Gender.String(),
		e.Department,
		e.Role,
		e.JoiningDate.Format(validator.DateLayout),
		e.BasicSalary.String(),
		e.Status.String(),
	}, ",")
}
