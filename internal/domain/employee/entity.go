package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// BenefitsLoadingFactor is applied on top of twelve months of basic salary
// to estimate cost to company.
var BenefitsLoadingFactor = decimal.RequireFromString("1.20")

var monthsPerYear = decimal.NewFromInt(12)

type Employee struct {
	ID          string
	FullName    string
	Gender      Gender
	Department  string
	Role        string
	JoiningDate time.Time
	BasicSalary decimal.Decimal // monthly
	Status      Status
}

// TenureYears returns the whole years between the joining date and today.
// It is negative when the joining date lies in the future.
func (e Employee) TenureYears(today time.Time) int {
	return WholeYearsBetween(e.JoiningDate, today)
}

// AnnualCTC returns basic salary * 12 * BenefitsLoadingFactor.
func (e Employee) AnnualCTC() decimal.Decimal {
	return e.BasicSalary.Mul(monthsPerYear).Mul(BenefitsLoadingFactor)
}

// WholeYearsBetween counts complete calendar years from start to end,
// truncating toward zero.
func WholeYearsBetween(start, end time.Time) int {
	if end.Before(start) {
		return -WholeYearsBetween(end, start)
	}
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}
