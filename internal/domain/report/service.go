package report

import "context"

// ReportService derives every analytics report from the current record store.
// Empty stores produce results with NoData set rather than errors.
type ReportService interface {
	Directory(ctx context.Context) (DirectoryReport, error)
	DepartmentDistribution(ctx context.Context) (DepartmentReport, error)
	Attrition(ctx context.Context) (AttritionReport, error)
	PayParity(ctx context.Context) (PayParityReport, error)
	Gratuity(ctx context.Context) (GratuityReport, error)
}
