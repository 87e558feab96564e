package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/talent-compass/internal/config"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/clock"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/logger"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
	"github.com/cmlabs-hris/talent-compass/internal/repository/flatfile"
	"github.com/cmlabs-hris/talent-compass/internal/repository/memory"
	dashboardservice "github.com/cmlabs-hris/talent-compass/internal/service/dashboard"
	employeeservice "github.com/cmlabs-hris/talent-compass/internal/service/employee"
	"github.com/cmlabs-hris/talent-compass/internal/service/recruitment"
	reportservice "github.com/cmlabs-hris/talent-compass/internal/service/report"
)

const employeeSource = `id,full_name,gender,department,role,joining_date,basic_salary,status
E001,Asha Rao,F,Engineering,Backend Engineer,2019-04-01,85000,Active

E002,Vikram Shah,M,Sales,Account Manager,2021-11-30,abc,Active
E003,Ravi Iyer,M,Finance,Controller,2010-07-15,90000,Exited
`

type harness struct {
	menu   *Menu
	dir    string
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T, input string) harness {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	clk := clock.Fixed(time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC))
	policy := config.DefaultPolicy()
	log := logger.Discard()

	repo := memory.NewEmployeeRepository()
	reports := reportservice.NewReportService(repo, clk, policy)
	recruit := recruitment.NewRecruitmentService(
		flatfile.NewCandidateLog(st, "candidates.csv"),
		flatfile.NewRejectionLog(st, "rejections.csv"),
		clk, policy, log,
	)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	menu := NewMenu(
		NewPrompter(strings.NewReader(input), out),
		NewRenderer(out, errOut, PlainStyles()),
		employeeservice.NewEmployeeService(repo, st, log),
		reports,
		recruit,
		dashboardservice.NewDashboardService(reports, recruit, clk),
		log,
	)
	return harness{menu: menu, dir: dir, out: out, errOut: errOut}
}

func (h harness) writeSource(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "startup.csv"), []byte(employeeSource), 0644))
}

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nsecond"), &out)

	got, err := p.Ask("Q1: ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Ask("Q2: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = p.Ask("Q3: ")
	assert.ErrorIs(t, err, ErrEndOfInput)
	assert.Equal(t, "Q1: Q2: Q3: ", out.String())
}

func TestPrompter_Ask_AnswerTooLong(t *testing.T) {
	long := strings.Repeat("x", maxAnswerSize+1)
	p := NewPrompter(strings.NewReader(long+"\nnext\n"), &bytes.Buffer{})

	_, err := p.Ask("")
	assert.ErrorIs(t, err, ErrAnswerTooLong)

	got, err := p.Ask("")
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestMenu_AnswerTooLongKeepsRunning(t *testing.T) {
	long := strings.Repeat("x", maxAnswerSize+1)
	h := newHarness(t, long+"\n\n6\nC-1\n"+long+"\n\n0\n")

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Invalid command. Please type a number between 0 and 8.")
	assert.Contains(t, h.errOut.String(), "Answers are limited to 65536 bytes.")
	assert.Contains(t, h.out.String(), "Shutting down TalentCompass")
	_, err := os.Stat(filepath.Join(h.dir, "candidates.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestMenu_ExitChoice(t *testing.T) {
	h := newHarness(t, "0\n")

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Shutting down TalentCompass")
}

func TestMenu_EndOfInputExitsGracefully(t *testing.T) {
	for _, input := range []string{"", "9\n", "1\n"} {
		h := newHarness(t, input)
		assert.NoError(t, h.menu.Run(context.Background()), "input %q", input)
	}
}

func TestMenu_InvalidChoice(t *testing.T) {
	h := newHarness(t, "42\n\n0\n")

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Invalid command. Please type a number between 0 and 8.")
}

func TestMenu_LoadDataAndDirectory(t *testing.T) {
	h := newHarness(t, "1\n\n0\n")
	h.writeSource(t)

	require.NoError(t, h.menu.LoadData(context.Background(), "startup.csv"))
	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Successfully loaded 2 employees.")
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "7 Years")
	assert.Contains(t, out, "₹1,224,000.00")

	errOut := h.errOut.String()
	assert.Contains(t, errOut, "Skipping blank line at row 3")
	assert.Contains(t, errOut, "malformed data at row 4")
}

func TestMenu_LoadData_Missing(t *testing.T) {
	h := newHarness(t, "")

	err := h.menu.LoadData(context.Background(), "nope.csv")

	require.Error(t, err)
	assert.Contains(t, h.errOut.String(), "File not found")

	err = h.menu.LoadData(context.Background(), "  ")
	require.Error(t, err)
	assert.Contains(t, h.errOut.String(), "File path cannot be null or empty.")
}

func TestMenu_Reports(t *testing.T) {
	h := newHarness(t, "2\n\n3\n\n4\n\n5\n\n0\n")
	h.writeSource(t)
	require.NoError(t, h.menu.LoadData(context.Background(), "startup.csv"))

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "Overall Turnover Rate  : 50.0%")
	assert.Contains(t, out, "Turnover exceeds 15% control limit.")
	assert.Contains(t, out, "parity ratio cannot be computed")
	assert.Contains(t, out, "Total Eligible Employees: 1")
	assert.Contains(t, out, "Notify Finance for gratuity provisioning.")
}

func TestMenu_LogCandidate(t *testing.T) {
	h := newHarness(t, "6\nC-1\nMeera Nair\nAnalyst\n2026-01-01\n2026-03-01\nAccepted\n\n0\n")

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Candidate C-1 successfully saved.")
	assert.Contains(t, out, "Time to hire: 59 days")
	assert.Contains(t, out, "Process bottleneck detected.")

	raw, err := os.ReadFile(filepath.Join(h.dir, "candidates.csv"))
	require.NoError(t, err)
	assert.Equal(t, "C-1,Meera Nair,Analyst,2026-01-01,2026-03-01,Accepted\n", string(raw))
}

func TestMenu_LogCandidate_InvalidDate(t *testing.T) {
	h := newHarness(t, "6\nC-1\nMeera Nair\nAnalyst\n01-01-2026\n\nAccepted\n\n0\n")

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.errOut.String(), "Invalid input")
	assert.Contains(t, h.errOut.String(), "application_date")
	_, err := os.Stat(filepath.Join(h.dir, "candidates.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestMenu_LogCandidate_EndOfInput(t *testing.T) {
	h := newHarness(t, "6\nC-1\nMeera Nair\n")

	require.NoError(t, h.menu.Run(context.Background()))

	_, err := os.Stat(filepath.Join(h.dir, "candidates.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestMenu_LogRejectionShowsPareto(t *testing.T) {
	h := newHarness(t, "7\nC-1\n3\n\n7\nC-2\nzz\n\n0\n")

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, `Rejection reason "Poor Culture Fit" logged for candidate C-1.`)
	assert.Contains(t, out, `Rejection reason "Other" logged for candidate C-2.`)
	assert.Contains(t, out, "Total Defects Analyzed: 2")
	assert.Contains(t, out, "FOCUS AREA")
}

func TestMenu_Dashboard(t *testing.T) {
	h := newHarness(t, "8\n\n0\n")
	h.writeSource(t)
	require.NoError(t, h.menu.LoadData(context.Background(), "startup.csv"))

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "TALENT COMPASS DASHBOARD 2026-10-16 10:00")
	assert.Contains(t, out, "EMPLOYEE DIRECTORY")
	assert.Contains(t, out, "No historical rejection data found yet. Start logging!")
}

func TestRenderer_Money(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, PlainStyles())

	assert.Equal(t, "₹1,234,567.50", r.Money(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "₹0.00", r.Money(decimal.Zero))
}

func TestTable_View(t *testing.T) {
	tbl := NewTable("ID", "Name")
	assert.Empty(t, tbl.View(PlainStyles()))

	tbl.AddRow("E1", "Asha Rao")
	tbl.AddRow("E22", "Li")
	lines := strings.Split(strings.TrimRight(tbl.View(PlainStyles()), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Regexp(t, `^\s*ID\s+\|\s+Name\s*$`, lines[0])
	assert.Regexp(t, `^-+\+-+$`, lines[1])
	assert.Regexp(t, `^\s*E1\s+\|\s+Asha Rao\s*$`, lines[2])
	assert.Regexp(t, `^\s*E22\s+\|\s+Li\s*$`, lines[3])
	assert.Equal(t, strings.Index(lines[0], "|"), strings.Index(lines[3], "|"), "columns line up")
}
