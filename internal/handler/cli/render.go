package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/domain/dashboard"
	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
	"github.com/cmlabs-hris/talent-compass/internal/domain/report"
	"github.com/cmlabs-hris/talent-compass/internal/handler/cli/response"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

// CurrencySymbol prefixes every monetary amount.
const CurrencySymbol = "₹"

const rule = "--------------------------------------------------"

// Renderer writes report results to out and warnings and errors to errOut.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	styles  Styles
	printer *message.Printer
}

func NewRenderer(out, errOut io.Writer, styles Styles) *Renderer {
	return &Renderer{
		out:     out,
		errOut:  errOut,
		styles:  styles,
		printer: message.NewPrinter(language.English),
	}
}

func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

func (r *Renderer) Title(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Title.Render("--- "+title+" ---"))
}

func (r *Renderer) Info(format string, a ...any) {
	fmt.Fprintln(r.out, r.styles.Info.Render("[INFO] "+fmt.Sprintf(format, a...)))
}

func (r *Renderer) Success(format string, a ...any) {
	fmt.Fprintln(r.out, r.styles.Success.Render(fmt.Sprintf(format, a...)))
}

func (r *Renderer) Alert(format string, a ...any) {
	fmt.Fprintln(r.out, r.styles.Warning.Render(fmt.Sprintf(format, a...)))
}

// Warn writes to the warning channel.
func (r *Renderer) Warn(format string, a ...any) {
	fmt.Fprintln(r.errOut, r.styles.Warning.Render("[WARN] "+fmt.Sprintf(format, a...)))
}

// Error writes to the warning channel.
func (r *Renderer) Error(format string, a ...any) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render("[ERROR] "+fmt.Sprintf(format, a...)))
}

// HandleError reports err on the warning channel, with field details for
// validation failures.
func (r *Renderer) HandleError(err error) {
	detail := response.Describe(err)
	r.Error("%s", detail.Message)
	fields := make([]string, 0, len(detail.Details))
	for field := range detail.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		r.Error("  %s: %s", field, detail.Details[field])
	}
}

func (r *Renderer) warnings(ws []report.Warning) {
	for _, w := range ws {
		r.Warn("Employee %s: %s", w.EmployeeID, w.Message)
	}
}

// Money formats d with the currency symbol and thousands separators.
func (r *Renderer) Money(d decimal.Decimal) string {
	return CurrencySymbol + r.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func (r *Renderer) Table(t *Table) {
	fmt.Fprint(r.out, t.View(r.styles))
}

func (r *Renderer) LoadSummary(s employee.LoadSummary) {
	for _, row := range s.BlankRows {
		r.Warn("Skipping blank line at row %d", row)
	}
	for _, mre := range s.Malformed {
		r.Warn("%s. Skipping record.", mre.Error())
	}
	r.Success("%s", s.Message())
}

func (r *Renderer) Directory(d report.DirectoryReport) {
	r.Title("EMPLOYEE DIRECTORY")
	if d.NoData {
		r.Info("No employee records found. Please load data first.")
		return
	}

	t := NewTable("ID", "Name", "Department", "Tenure", "Annual CTC")
	for _, row := range d.Rows {
		t.AddRow(row.ID, row.FullName, row.Department, fmt.Sprintf("%d Years", row.TenureYears), r.Money(row.AnnualCTC))
	}
	r.Table(t)
	r.warnings(d.Warnings)
}

func (r *Renderer) Departments(d report.DepartmentReport) {
	r.Title("Workforce Distribution")
	if d.NoData {
		r.Info("No employee data available to generate department report.")
		return
	}
	r.warnings(d.Warnings)
	if d.NoActive {
		r.Info("No active employees found for department grouping.")
		return
	}

	t := NewTable("Department", "Employees")
	for _, g := range d.Groups {
		t.AddRow(g.Department, strconv.Itoa(g.Count))
	}
	r.Table(t)
	r.Printf("Total Active Employees: %d\n", d.ActiveTotal)
}

func (r *Renderer) Attrition(a report.AttritionReport) {
	r.Title("Attrition Analysis")
	if a.NoData {
		r.Info("No employee data available to generate attrition report.")
		return
	}
	for _, w := range a.Unrecognized {
		r.Warn("Employee %s: %s", w.EmployeeID, w.Message)
	}
	r.warnings(a.Warnings)

	r.Printf("Total Historical Hires : %d\n", a.TotalHires)
	r.Printf("Current Active Staff   : %d\n", a.CurrentStaff)
	r.Printf("Employees Exited       : %d\n", a.Exited)
	r.Printf("Flight Risk Headcount  : %d (Serving Notice Period)\n", a.NoticePeriod)
	r.Println(rule)
	r.Printf("Overall Turnover Rate  : %.1f%%\n", a.TurnoverRate)

	if a.Signal == report.TurnoverExceedsLimit {
		r.Alert("[WARNING] Turnover exceeds %s%% control limit.", strconv.FormatFloat(a.ControlLimit, 'f', -1, 64))
		r.Alert("   -> %s", report.RetentionRecommendation)
		return
	}
	r.Success("[STATUS] Retention process is within acceptable control limits.")
}

func (r *Renderer) PayParity(p report.PayParityReport) {
	r.Title("DE&I Analytics: Pay Parity Report")
	if p.NoData {
		r.Info("No employee data available to generate pay parity report.")
		return
	}
	r.warnings(p.Warnings)
	r.warnings(p.ExcludedGender)
	if !p.Computable {
		r.Info("No male salary data available; parity ratio cannot be computed.")
	}

	r.Printf("Male Workforce   : %d employees | Avg Salary: %s\n", p.MaleCount, r.Money(p.AvgMaleSalary))
	r.Printf("Female Workforce : %d employees | Avg Salary: %s\n", p.FemaleCount, r.Money(p.AvgFemaleSalary))
	r.Println(rule)
	r.Printf("Org-Wide Parity Ratio: %s%%\n", p.ParityRatio.StringFixed(1))

	switch p.Signal {
	case report.ParityEquitable:
		r.Success("[EQUITABLE] Pay is balanced across genders.")
	case report.ParityWomenUnderpaid:
		r.Alert("[BIAS ALERT] Women earn roughly %d cents for every %s1 earned by men.", p.CentsOnTheRupee, CurrencySymbol)
		r.Alert("   -> Recommendation: %s", report.CompensationAuditRecommendation)
	case report.ParityMenUnderpaid:
		r.Alert("[BIAS ALERT] Men earn less on average than female counterparts.")
	}
}

func (r *Renderer) Gratuity(g report.GratuityReport) {
	r.Title(fmt.Sprintf("COMPLIANCE & REWARDS: %d-YEAR TENURE FLAG", g.MinYears))
	if g.NoData {
		r.Info("No employee data available to generate gratuity report.")
		return
	}
	r.warnings(g.Warnings)

	t := NewTable("ID", "Name", "Department", "Joining Date", "Tenure (Yrs)")
	for _, row := range g.Eligible {
		t.AddRow(row.ID, row.FullName, row.Department, row.JoiningDate.Format(validator.DateLayout), fmt.Sprintf("%d Years", row.TenureYears))
	}
	r.Table(t)
	r.Println(rule)
	r.Printf("Total Eligible Employees: %d\n", g.EligibleCount)

	if g.NoneEligible {
		r.Printf("No employees are currently eligible for the %d-year milestone.\n", g.MinYears)
		return
	}
	for _, action := range g.Actions {
		r.Success("[ACTION REQUIRED] %s", action)
	}
}

func (r *Renderer) Pareto(p candidate.ParetoReport) {
	r.Title("PARETO ANALYSIS: PIPELINE BOTTLENECKS")
	if p.NoHistory {
		r.Println("No historical rejection data found yet. Start logging!")
		return
	}

	r.Printf("Total Defects Analyzed: %d\n", p.Total)
	t := NewTable("Reason", "Count", "Share", "Cumulative")
	for _, e := range p.Entries {
		t.AddRow(e.Reason, strconv.Itoa(e.Count), fmt.Sprintf("%5.1f%%", e.Percent), fmt.Sprintf("%5.1f%%", e.CumulativeShare))
	}
	r.Table(t)
	r.Println(rule)
	r.Alert("FOCUS AREA: Address %q to eliminate the largest source of waste.", p.FocusArea())
}

func (r *Renderer) CandidateOutcome(o candidate.CandidateOutcome) {
	r.Success("Candidate %s successfully saved.", o.Candidate.ID)
	if o.CycleTimeDays == candidate.NotYetOffered {
		return
	}
	r.Printf("Time to hire: %d days\n", o.CycleTimeDays)
	if o.Bottleneck {
		r.Alert("[WARNING] Process bottleneck detected.")
	}
}

func (r *Renderer) RejectionOutcome(o candidate.RejectionOutcome) {
	r.Success("Rejection reason %q logged for candidate %s.", o.Event.Reason, o.Event.CandidateID)
}

// Dashboard renders every section of the snapshot in menu order.
func (r *Renderer) Dashboard(s *dashboard.Snapshot) {
	r.Title("TALENT COMPASS DASHBOARD " + s.GeneratedAt.Format("2006-01-02 15:04"))
	r.Directory(s.Directory)
	r.Departments(s.Departments)
	r.Attrition(s.Attrition)
	r.PayParity(s.PayParity)
	r.Gratuity(s.Gratuity)
	r.Pareto(s.Pareto)
}
