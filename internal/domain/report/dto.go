package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnassignedDepartment groups records whose department is blank.
const UnassignedDepartment = "Unassigned"

// Warning flags one record a report skipped or excluded.
type Warning struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

// ========================================
// EMPLOYEE DIRECTORY
// ========================================

type DirectoryReport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	NoData      bool           `json:"no_data"`
	Rows        []DirectoryRow `json:"rows"`
	Warnings    []Warning      `json:"warnings,omitempty"`
}

type DirectoryRow struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Department  string          `json:"department"`
	TenureYears int             `json:"tenure_years"`
	AnnualCTC   decimal.Decimal `json:"annual_ctc"`
}

// ========================================
// WORKFORCE DISTRIBUTION
// ========================================

type DepartmentReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	NoData      bool              `json:"no_data"`
	NoActive    bool              `json:"no_active"`
	ActiveTotal int               `json:"active_total"`
	Groups      []DepartmentCount `json:"groups"` // sorted by department name
	Warnings    []Warning         `json:"warnings,omitempty"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// ========================================
// ATTRITION
// ========================================

type TurnoverSignal string

const (
	TurnoverWithinLimits TurnoverSignal = "within_limits"
	TurnoverExceedsLimit TurnoverSignal = "exceeds_control_limit"
)

// RetentionRecommendation accompanies TurnoverExceedsLimit.
const RetentionRecommendation = "Root Cause Analysis (DMAIC) required for retention process."

type AttritionReport struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	NoData       bool           `json:"no_data"`
	TotalHires   int            `json:"total_hires"`
	Exited       int            `json:"exited"`
	NoticePeriod int            `json:"notice_period"` // flight risk headcount
	Active       int            `json:"active"`        // active and probation
	CurrentStaff int            `json:"current_staff"` // active, probation and notice period
	TurnoverRate float64        `json:"turnover_rate"` // percent
	ControlLimit float64        `json:"control_limit"` // percent
	Signal       TurnoverSignal `json:"signal"`
	Unrecognized []Warning      `json:"unrecognized,omitempty"`
	Warnings     []Warning      `json:"warnings,omitempty"`
}

// ========================================
// PAY PARITY
// ========================================

type ParitySignal string

const (
	ParityEquitable      ParitySignal = "equitable"
	ParityWomenUnderpaid ParitySignal = "bias_alert_women_underpaid"
	ParityMenUnderpaid   ParitySignal = "bias_alert_men_underpaid"
	ParityUndetermined   ParitySignal = "undetermined"
)

// CompensationAuditRecommendation accompanies ParityWomenUnderpaid.
const CompensationAuditRecommendation = "Conduct a role-by-role compensation audit."

type PayParityReport struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	NoData          bool            `json:"no_data"`
	MaleCount       int             `json:"male_count"`
	FemaleCount     int             `json:"female_count"`
	AvgMaleSalary   decimal.Decimal `json:"avg_male_salary"`
	AvgFemaleSalary decimal.Decimal `json:"avg_female_salary"`
	ParityRatio     decimal.Decimal `json:"parity_ratio"` // percent
	Computable      bool            `json:"computable"`   // false when the male average is zero
	Signal          ParitySignal    `json:"signal"`
	CentsOnTheRupee int64           `json:"cents_on_the_rupee,omitempty"`
	ExcludedGender  []Warning       `json:"excluded_gender,omitempty"`
	Warnings        []Warning       `json:"warnings,omitempty"`
}

// ========================================
// GRATUITY ELIGIBILITY
// ========================================

type GratuityAction string

const (
	ActionNotifyFinance GratuityAction = "Notify Finance for gratuity provisioning."
	ActionServiceAward  GratuityAction = "Trigger 5-Year Service Award workflows."
)

type GratuityReport struct {
	GeneratedAt   time.Time        `json:"generated_at"`
	NoData        bool             `json:"no_data"`
	MinYears      int              `json:"min_years"`
	Eligible      []GratuityRow    `json:"eligible"`
	EligibleCount int              `json:"eligible_count"`
	NoneEligible  bool             `json:"none_eligible"`
	Actions       []GratuityAction `json:"actions,omitempty"`
	Warnings      []Warning        `json:"warnings,omitempty"`
}

type GratuityRow struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Department  string    `json:"department"`
	JoiningDate time.Time `json:"joining_date"`
	TenureYears int       `json:"tenure_years"`
}
