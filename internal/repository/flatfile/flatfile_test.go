package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
)

func newStorage(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return st, dir
}

func TestCandidateLog_Append(t *testing.T) {
	ctx := context.Background()
	st, dir := newStorage(t)
	log := NewCandidateLog(st, "candidates.csv")

	require.NoError(t, log.Append(ctx, candidate.Candidate{
		ID:              "C-1",
		Name:            "Meera Nair",
		RoleApplied:     "Analyst",
		ApplicationDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:          "Rejected",
	}))

	raw, err := os.ReadFile(filepath.Join(dir, "candidates.csv"))
	require.NoError(t, err)
	assert.Equal(t, "C-1,Meera Nair,Analyst,2026-01-05,PENDING,Rejected\n", string(raw))
}

func TestRejectionLog_ReadReasons_NoFile(t *testing.T) {
	st, _ := newStorage(t)
	log := NewRejectionLog(st, "rejections.csv")

	_, err := log.ReadReasons(context.Background())

	assert.ErrorIs(t, err, candidate.ErrNoHistory)
}

func TestRejectionLog_AppendThenRead(t *testing.T) {
	ctx := context.Background()
	st, dir := newStorage(t)
	log := NewRejectionLog(st, "rejections.csv")
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, log.Append(ctx, candidate.RejectionEvent{CandidateID: "C-1", Reason: candidate.ReasonCultureFit, Date: today}))
	require.NoError(t, log.Append(ctx, candidate.RejectionEvent{CandidateID: "C-2", Reason: candidate.ReasonOther, Date: today}))

	// Hand-edited history with a blank and a truncated line.
	f, err := os.OpenFile(filepath.Join(dir, "rejections.csv"), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("\nbroken\nC-3,Legacy Reason,2024-01-01\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	reasons, err := log.ReadReasons(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Poor Culture Fit", "Other", "Legacy Reason"}, reasons)
}

func TestRejectionLog_ReadReasons_Unreadable(t *testing.T) {
	st, dir := newStorage(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "rejections.csv"), 0755))
	log := NewRejectionLog(st, "rejections.csv")

	_, err := log.ReadReasons(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, candidate.ErrNoHistory)
}
