package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/talent-compass/internal/config"
	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
	"github.com/cmlabs-hris/talent-compass/internal/domain/report"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/clock"
)

var hundred = decimal.NewFromInt(100)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
	policy       config.Policy
}

func NewReportService(employeeRepo employee.EmployeeRepository, clk clock.Clock, policy config.Policy) report.ReportService {
	if clk == nil {
		clk = clock.Real()
	}
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
		policy:       policy,
	}
}

func (s *ReportServiceImpl) listEmployees(ctx context.Context) ([]employee.Employee, time.Time, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, s.clock.Now(), nil
}

// Directory implements report.ReportService.
func (s *ReportServiceImpl) Directory(ctx context.Context) (report.DirectoryReport, error) {
	employees, now, err := s.listEmployees(ctx)
	if err != nil {
		return report.DirectoryReport{}, err
	}

	result := report.DirectoryReport{GeneratedAt: now, NoData: len(employees) == 0}
	today := clock.Today(s.clock)

	for _, emp := range employees {
		if emp.JoiningDate.IsZero() {
			result.Warnings = append(result.Warnings, warn(emp, "missing joining date, skipped"))
			continue
		}
		result.Rows = append(result.Rows, report.DirectoryRow{
			ID:          emp.ID,
			FullName:    emp.FullName,
			Department:  department(emp),
			TenureYears: emp.TenureYears(today),
			AnnualCTC:   emp.AnnualCTC(),
		})
	}
	return result, nil
}

// DepartmentDistribution implements report.ReportService.
func (s *ReportServiceImpl) DepartmentDistribution(ctx context.Context) (report.DepartmentReport, error) {
	employees, now, err := s.listEmployees(ctx)
	if err != nil {
		return report.DepartmentReport{}, err
	}

	result := report.DepartmentReport{GeneratedAt: now, NoData: len(employees) == 0}
	counts := make(map[string]int)

	for _, emp := range employees {
		if emp.Status.Kind == employee.StatusMissing {
			result.Warnings = append(result.Warnings, warn(emp, "missing status, skipped"))
			continue
		}
		if emp.Status.Kind != employee.StatusActive {
			continue
		}
		counts[department(emp)]++
		result.ActiveTotal++
	}

	result.Groups = make([]report.DepartmentCount, 0, len(counts))
	for dept, n := range counts {
		result.Groups = append(result.Groups, report.DepartmentCount{Department: dept, Count: n})
	}
	sort.Slice(result.Groups, func(i, j int) bool {
		return result.Groups[i].Department < result.Groups[j].Department
	})
	result.NoActive = !result.NoData && result.ActiveTotal == 0
	return result, nil
}

// Attrition implements report.ReportService. Every stored record counts as a
// hire; only recognised statuses fall into a bucket.
func (s *ReportServiceImpl) Attrition(ctx context.Context) (report.AttritionReport, error) {
	employees, now, err := s.listEmployees(ctx)
	if err != nil {
		return report.AttritionReport{}, err
	}

	result := report.AttritionReport{
		GeneratedAt:  now,
		NoData:       len(employees) == 0,
		TotalHires:   len(employees),
		ControlLimit: s.policy.TurnoverControlLimit,
		Signal:       report.TurnoverWithinLimits,
	}

	for _, emp := range employees {
		switch emp.Status.Kind {
		case employee.StatusExited:
			result.Exited++
		case employee.StatusNoticePeriod:
			result.NoticePeriod++
		case employee.StatusActive, employee.StatusProbation:
			result.Active++
		case employee.StatusUnrecognized:
			result.Unrecognized = append(result.Unrecognized,
				warn(emp, fmt.Sprintf("unrecognised status %q, excluded from counts", emp.Status.Raw)))
		case employee.StatusMissing:
			result.Warnings = append(result.Warnings, warn(emp, "missing status, skipped"))
		}
	}
	result.CurrentStaff = result.Active + result.NoticePeriod

	if result.TotalHires > 0 {
		result.TurnoverRate = float64(result.Exited) / float64(result.TotalHires) * 100
	}
	if result.TurnoverRate > result.ControlLimit {
		result.Signal = report.TurnoverExceedsLimit
	}
	return result, nil
}

// PayParity implements report.ReportService.
func (s *ReportServiceImpl) PayParity(ctx context.Context) (report.PayParityReport, error) {
	employees, now, err := s.listEmployees(ctx)
	if err != nil {
		return report.PayParityReport{}, err
	}

	result := report.PayParityReport{
		GeneratedAt:     now,
		NoData:          len(employees) == 0,
		AvgMaleSalary:   decimal.Zero,
		AvgFemaleSalary: decimal.Zero,
		ParityRatio:     decimal.Zero,
		Signal:          report.ParityUndetermined,
	}
	totalMale, totalFemale := decimal.Zero, decimal.Zero

	for _, emp := range employees {
		switch emp.Status.Kind {
		case employee.StatusActive, employee.StatusProbation, employee.StatusNoticePeriod:
		case employee.StatusMissing:
			result.Warnings = append(result.Warnings, warn(emp, "missing status, skipped"))
			continue
		default:
			continue
		}

		if emp.BasicSalary.IsNegative() {
			result.Warnings = append(result.Warnings, warn(emp, "negative salary, skipped"))
			continue
		}

		switch emp.Gender.Kind {
		case employee.GenderMale:
			totalMale = totalMale.Add(emp.BasicSalary)
			result.MaleCount++
		case employee.GenderFemale:
			totalFemale = totalFemale.Add(emp.BasicSalary)
			result.FemaleCount++
		default:
			result.ExcludedGender = append(result.ExcludedGender,
				warn(emp, fmt.Sprintf("unrecognised gender %q, excluded from parity calculation", emp.Gender.Raw)))
		}
	}

	if result.MaleCount > 0 {
		result.AvgMaleSalary = totalMale.Div(decimal.NewFromInt(int64(result.MaleCount)))
	}
	if result.FemaleCount > 0 {
		result.AvgFemaleSalary = totalFemale.Div(decimal.NewFromInt(int64(result.FemaleCount)))
	}

	if !result.AvgMaleSalary.IsPositive() {
		return result, nil
	}
	result.Computable = true
	ratio := result.AvgFemaleSalary.Div(result.AvgMaleSalary).Mul(hundred)
	result.ParityRatio = ratio

	lower := decimal.NewFromFloat(s.policy.ParityLowerBound)
	upper := decimal.NewFromFloat(s.policy.ParityUpperBound)
	switch {
	case ratio.GreaterThanOrEqual(lower) && ratio.LessThanOrEqual(upper):
		result.Signal = report.ParityEquitable
	case ratio.IsPositive() && ratio.LessThan(lower):
		result.Signal = report.ParityWomenUnderpaid
		result.CentsOnTheRupee = ratio.Round(0).IntPart()
	case ratio.GreaterThan(upper):
		result.Signal = report.ParityMenUnderpaid
	}
	return result, nil
}

// Gratuity implements report.ReportService.
func (s *ReportServiceImpl) Gratuity(ctx context.Context) (report.GratuityReport, error) {
	employees, now, err := s.listEmployees(ctx)
	if err != nil {
		return report.GratuityReport{}, err
	}

	result := report.GratuityReport{
		GeneratedAt: now,
		NoData:      len(employees) == 0,
		MinYears:    s.policy.GratuityMinYears,
	}
	today := clock.Today(s.clock)

	for _, emp := range employees {
		switch emp.Status.Kind {
		case employee.StatusActive, employee.StatusNoticePeriod:
		case employee.StatusMissing:
			result.Warnings = append(result.Warnings, warn(emp, "missing status, skipped"))
			continue
		default:
			continue
		}

		if emp.JoiningDate.IsZero() {
			result.Warnings = append(result.Warnings, warn(emp, "missing joining date, skipped"))
			continue
		}
		tenure := emp.TenureYears(today)
		if tenure < 0 {
			result.Warnings = append(result.Warnings, warn(emp, "negative tenure, skipped"))
			continue
		}
		if tenure < result.MinYears {
			continue
		}
		result.Eligible = append(result.Eligible, report.GratuityRow{
			ID:          emp.ID,
			FullName:    emp.FullName,
			Department:  department(emp),
			JoiningDate: emp.JoiningDate,
			TenureYears: tenure,
		})
	}

	result.EligibleCount = len(result.Eligible)
	if result.EligibleCount > 0 {
		result.Actions = []report.GratuityAction{report.ActionNotifyFinance, report.ActionServiceAward}
	} else {
		result.NoneEligible = !result.NoData
	}
	return result, nil
}

// department returns the trimmed department, or report.UnassignedDepartment.
func department(emp employee.Employee) string {
	if d := strings.TrimSpace(emp.Department); d != "" {
		return d
	}
	return report.UnassignedDepartment
}

func warn(emp employee.Employee, msg string) report.Warning {
	id := emp.ID
	if strings.TrimSpace(id) == "" {
		id = "N/A"
	}
	return report.Warning{EmployeeID: id, Message: msg}
}
