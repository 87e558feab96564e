package dashboard

import (
	"time"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/domain/report"
)

// Snapshot combines every report and the rejection Pareto breakdown, all
// taken from the same store contents.
type Snapshot struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Directory   report.DirectoryReport  `json:"directory"`
	Departments report.DepartmentReport `json:"departments"`
	Attrition   report.AttritionReport  `json:"attrition"`
	PayParity   report.PayParityReport  `json:"pay_parity"`
	Gratuity    report.GratuityReport   `json:"gratuity"`
	Pareto      candidate.ParetoReport  `json:"pareto"`
}
