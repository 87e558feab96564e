package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/domain/dashboard"
	"github.com/cmlabs-hris/talent-compass/internal/domain/report"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/clock"
)

type DashboardServiceImpl struct {
	reportService      report.ReportService
	recruitmentService candidate.RecruitmentService
	clock              clock.Clock
}

func NewDashboardService(
	reportService report.ReportService,
	recruitmentService candidate.RecruitmentService,
	clk clock.Clock,
) dashboard.DashboardService {
	if clk == nil {
		clk = clock.Real()
	}
	return &DashboardServiceImpl{
		reportService:      reportService,
		recruitmentService: recruitmentService,
		clock:              clk,
	}
}

// GetSnapshot runs every report and the Pareto breakdown in parallel. The
// record store is read-only once loaded, so the reports share it freely.
func (s *DashboardServiceImpl) GetSnapshot(ctx context.Context) (*dashboard.Snapshot, error) {
	snapshot := &dashboard.Snapshot{GeneratedAt: s.clock.Now()}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.reportService.Directory(gCtx)
		snapshot.Directory = r
		return err
	})

	g.Go(func() error {
		r, err := s.reportService.DepartmentDistribution(gCtx)
		snapshot.Departments = r
		return err
	})

	g.Go(func() error {
		r, err := s.reportService.Attrition(gCtx)
		snapshot.Attrition = r
		return err
	})

	g.Go(func() error {
		r, err := s.reportService.PayParity(gCtx)
		snapshot.PayParity = r
		return err
	})

	g.Go(func() error {
		r, err := s.reportService.Gratuity(gCtx)
		snapshot.Gratuity = r
		return err
	})

	// Pareto reads the rejection log, not the store.
	g.Go(func() error {
		r, err := s.recruitmentService.Pareto(gCtx)
		snapshot.Pareto = r
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
