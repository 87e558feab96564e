package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/talent-compass/internal/config"
	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/domain/dashboard"
	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
	"github.com/cmlabs-hris/talent-compass/internal/domain/report"
	"github.com/cmlabs-hris/talent-compass/internal/handler/cli"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/clock"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/logger"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
	"github.com/cmlabs-hris/talent-compass/internal/repository/flatfile"
	"github.com/cmlabs-hris/talent-compass/internal/repository/memory"
	dashboardService "github.com/cmlabs-hris/talent-compass/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/talent-compass/internal/service/employee"
	recruitmentService "github.com/cmlabs-hris/talent-compass/internal/service/recruitment"
	reportService "github.com/cmlabs-hris/talent-compass/internal/service/report"
)

// overrides holds the command line flags that take precedence over the
// environment.
type overrides struct {
	envFile      string
	dataDir      string
	employeeFile string
	policyFile   string
	logLevel     string
}

type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	employees   employee.EmployeeService
	reports     report.ReportService
	recruitment candidate.RecruitmentService
	dashboard   dashboard.DashboardService
}

func loadConfig(o overrides) (*config.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}

	if o.dataDir != "" {
		cfg.Storage.DataDir = o.dataDir
	}
	if o.employeeFile != "" {
		cfg.Storage.EmployeeFile = o.employeeFile
	}
	if o.logLevel != "" {
		cfg.App.LogLevel = o.logLevel
	}
	if o.policyFile != "" {
		cfg.Storage.PolicyFile = o.policyFile
		if cfg.Policy, err = config.LoadPolicy(o.policyFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	log := logger.New(logOut, cfg.App.LogLevel, cfg.App.LogFormat)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}

	clk := clock.Real()

	employeeRepo := memory.NewEmployeeRepository()
	candidateLog := flatfile.NewCandidateLog(fileStorage, cfg.Storage.CandidateLog)
	rejectionLog := flatfile.NewRejectionLog(fileStorage, cfg.Storage.RejectionLog)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage, log)
	reportSvc := reportService.NewReportService(employeeRepo, clk, cfg.Policy)
	recruitmentSvc := recruitmentService.NewRecruitmentService(candidateLog, rejectionLog, clk, cfg.Policy, log)
	dashboardSvc := dashboardService.NewDashboardService(reportSvc, recruitmentSvc, clk)

	log.Debug("Application wired",
		"env", cfg.App.Env,
		"data_dir", cfg.Storage.DataDir,
		"employee_file", cfg.Storage.EmployeeFile,
	)

	return &app{
		cfg:         cfg,
		logger:      log,
		employees:   employeeSvc,
		reports:     reportSvc,
		recruitment: recruitmentSvc,
		dashboard:   dashboardSvc,
	}, nil
}

func (a *app) menu(in io.Reader, out, errOut io.Writer) *cli.Menu {
	return cli.NewMenu(
		cli.NewPrompter(in, out),
		cli.NewRenderer(out, errOut, styles(out)),
		a.employees,
		a.reports,
		a.recruitment,
		a.dashboard,
		a.logger,
	)
}

// styles colours only terminal output.
func styles(out io.Writer) cli.Styles {
	if f, ok := out.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return cli.DefaultStyles()
		}
	}
	return cli.PlainStyles()
}
