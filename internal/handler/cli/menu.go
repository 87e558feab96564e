package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/domain/dashboard"
	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
	"github.com/cmlabs-hris/talent-compass/internal/domain/report"
)

const menuText = `
=========================================
      TALENT COMPASS - HRIS
=========================================
--- ANALYTICS MODULES ---
[1] View Master Employee Directory
[2] Workforce Distribution (Headcount)
[3] Six Sigma Attrition & Risk Report
[4] DE&I Gender Pay Parity Report
[5] Legal Compliance (Gratuity Eligibility)

--- DATA ENTRY MODULES ---
[6] Recruitment: Log New Candidate & Cycle Time
[7] Quality Control: Log Rejection & View Pareto Chart

[8] Combined Dashboard
[0] Exit System
=========================================`

const (
	choicePrompt = "Enter your choice (0-8): "
	pausePrompt  = "\nPress [ENTER] to return to the Main Menu..."
)

// Menu is the interactive dispatch loop.
type Menu struct {
	prompter    *Prompter
	renderer    *Renderer
	employees   employee.EmployeeService
	reports     report.ReportService
	recruitment candidate.RecruitmentService
	dashboard   dashboard.DashboardService
	logger      *slog.Logger
}

func NewMenu(
	prompter *Prompter,
	renderer *Renderer,
	employees employee.EmployeeService,
	reports report.ReportService,
	recruitment candidate.RecruitmentService,
	dashboard dashboard.DashboardService,
	logger *slog.Logger,
) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		prompter:    prompter,
		renderer:    renderer,
		employees:   employees,
		reports:     reports,
		recruitment: recruitment,
		dashboard:   dashboard,
		logger:      logger,
	}
}

// LoadData loads the employee source at path and reports the outcome. A
// failed load is reported and leaves the store as it was.
func (m *Menu) LoadData(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		m.renderer.Error("File path cannot be null or empty.")
		return fmt.Errorf("%w: empty path", employee.ErrMissingSource)
	}
	m.renderer.Println("Reading data from: " + path)

	summary, err := m.employees.LoadFile(ctx, path)
	if err != nil {
		m.renderer.HandleError(err)
		return err
	}
	m.renderer.LoadSummary(summary)
	return nil
}

// Run loops until the exit choice or end of input. Operation failures are
// reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.renderer.Println(menuText)
		choice, err := m.prompter.Ask(choicePrompt)
		if errors.Is(err, ErrAnswerTooLong) {
			choice, err = "", nil
		}
		if err != nil {
			return endOfInput(err)
		}

		choice = strings.TrimSpace(choice)
		if choice == "0" {
			m.renderer.Println("\nShutting down TalentCompass... Data securely saved.")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, ErrEndOfInput) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.logger.Debug("Menu operation failed", "choice", choice, "error", err)
			if errors.Is(err, ErrAnswerTooLong) {
				m.renderer.Error("Invalid input. Answers are limited to %d bytes.", maxAnswerSize)
			} else {
				m.renderer.HandleError(err)
			}
		}

		if _, err := m.prompter.Ask(pausePrompt); err != nil && !errors.Is(err, ErrAnswerTooLong) {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, ErrEndOfInput) {
		return nil
	}
	return err
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		r, err := m.reports.Directory(ctx)
		if err != nil {
			return err
		}
		m.renderer.Directory(r)
	case "2":
		r, err := m.reports.DepartmentDistribution(ctx)
		if err != nil {
			return err
		}
		m.renderer.Departments(r)
	case "3":
		r, err := m.reports.Attrition(ctx)
		if err != nil {
			return err
		}
		m.renderer.Attrition(r)
	case "4":
		r, err := m.reports.PayParity(ctx)
		if err != nil {
			return err
		}
		m.renderer.PayParity(r)
	case "5":
		r, err := m.reports.Gratuity(ctx)
		if err != nil {
			return err
		}
		m.renderer.Gratuity(r)
	case "6":
		return m.logCandidate(ctx)
	case "7":
		return m.logRejection(ctx)
	case "8":
		s, err := m.dashboard.GetSnapshot(ctx)
		if err != nil {
			return err
		}
		m.renderer.Dashboard(s)
	default:
		m.renderer.Println("\nInvalid command. Please type a number between 0 and 8.")
	}
	return nil
}

func (m *Menu) logCandidate(ctx context.Context) error {
	m.renderer.Title("CANDIDATE APPLICATION LOGGING")

	var in candidate.CandidateInput
	for _, q := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter Candidate ID: ", &in.ID},
		{"Enter Full Name: ", &in.Name},
		{"Enter Role Applied For: ", &in.RoleApplied},
		{"Enter Application Date (YYYY-MM-DD): ", &in.ApplicationDate},
		{"Enter Offer Date (YYYY-MM-DD, blank if pending): ", &in.OfferDate},
		{"Enter Current Offer Status (Accepted/Rejected): ", &in.Status},
	} {
		answer, err := m.prompter.Ask(q.prompt)
		if err != nil {
			return err
		}
		*q.dst = answer
	}

	outcome, err := m.recruitment.LogCandidate(ctx, in)
	if err != nil {
		return err
	}
	m.renderer.CandidateOutcome(outcome)
	return nil
}

// logRejection always ends with the Pareto breakdown, even when the append
// failed.
func (m *Menu) logRejection(ctx context.Context) error {
	m.renderer.Title("LOG CANDIDATE REJECTION")

	id, err := m.prompter.Ask("Enter Candidate ID: ")
	if err != nil {
		return err
	}
	m.renderer.Println("Select Rejection Reason:")
	for i, reason := range candidate.ReasonMenu {
		m.renderer.Printf("[%d] %s\n", i+1, reason)
	}
	choice, err := m.prompter.Ask(fmt.Sprintf("Choice (1-%d): ", len(candidate.ReasonMenu)))
	if err != nil {
		return err
	}

	outcome, err := m.recruitment.LogRejection(ctx, candidate.RejectionInput{CandidateID: id, Choice: choice})
	if err != nil {
		m.renderer.HandleError(err)
	} else {
		m.renderer.RejectionOutcome(outcome)
	}

	pareto, err := m.recruitment.Pareto(ctx)
	if err != nil {
		return err
	}
	m.renderer.Pareto(pareto)
	return nil
}
