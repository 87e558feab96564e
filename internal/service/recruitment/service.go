package recruitment

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cmlabs-hris/talent-compass/internal/config"
	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/clock"
)

type RecruitmentServiceImpl struct {
	candidateLog candidate.CandidateLog
	rejectionLog candidate.RejectionLog
	clock        clock.Clock
	policy       config.Policy
	logger       *slog.Logger
}

func NewRecruitmentService(
	candidateLog candidate.CandidateLog,
	rejectionLog candidate.RejectionLog,
	clk clock.Clock,
	policy config.Policy,
	logger *slog.Logger,
) candidate.RecruitmentService {
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecruitmentServiceImpl{
		candidateLog: candidateLog,
		rejectionLog: rejectionLog,
		clock:        clk,
		policy:       policy,
		logger:       logger,
	}
}

// LogCandidate implements candidate.RecruitmentService.
func (s *RecruitmentServiceImpl) LogCandidate(ctx context.Context, in candidate.CandidateInput) (candidate.CandidateOutcome, error) {
	c, err := in.ToCandidate()
	if err != nil {
		return candidate.CandidateOutcome{}, fmt.Errorf("%w: %w", candidate.ErrInvalidInput, err)
	}

	if err := s.candidateLog.Append(ctx, c); err != nil {
		s.logger.Error("Failed to append candidate", "candidate_id", c.ID, "error", err)
		return candidate.CandidateOutcome{}, fmt.Errorf("%w: %w", candidate.ErrLogUnavailable, err)
	}

	days := c.CycleTimeDays()
	outcome := candidate.CandidateOutcome{
		Candidate:     c,
		CycleTimeDays: days,
		Bottleneck:    c.HasOffer() && days > s.policy.BottleneckDays,
	}
	s.logger.Debug("Logged candidate", "candidate_id", c.ID, "cycle_time_days", days, "bottleneck", outcome.Bottleneck)
	return outcome, nil
}

// LogRejection implements candidate.RecruitmentService.
func (s *RecruitmentServiceImpl) LogRejection(ctx context.Context, in candidate.RejectionInput) (candidate.RejectionOutcome, error) {
	if err := in.Validate(); err != nil {
		return candidate.RejectionOutcome{}, fmt.Errorf("%w: %w", candidate.ErrInvalidInput, err)
	}

	event := candidate.RejectionEvent{
		CandidateID: strings.TrimSpace(in.CandidateID),
		Reason:      candidate.ReasonForChoice(in.Choice),
		Date:        clock.Today(s.clock),
	}
	if err := s.rejectionLog.Append(ctx, event); err != nil {
		s.logger.Error("Failed to append rejection", "candidate_id", event.CandidateID, "error", err)
		return candidate.RejectionOutcome{}, fmt.Errorf("%w: %w", candidate.ErrLogUnavailable, err)
	}

	s.logger.Debug("Logged rejection", "candidate_id", event.CandidateID, "reason", event.Reason)
	return candidate.RejectionOutcome{Event: event}, nil
}

// Pareto implements candidate.RecruitmentService. A missing or unreadable
// log, or one without a single well-formed line, yields NoHistory.
func (s *RecruitmentServiceImpl) Pareto(ctx context.Context) (candidate.ParetoReport, error) {
	result := candidate.ParetoReport{GeneratedAt: s.clock.Now()}

	reasons, err := s.rejectionLog.ReadReasons(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return candidate.ParetoReport{}, ctx.Err()
		}
		s.logger.Warn("Rejection history unavailable", "error", err)
		result.NoHistory = true
		return result, nil
	}

	counts := make(map[string]int)
	for _, reason := range reasons {
		counts[reason]++
	}
	result.Total = len(reasons)
	if result.Total == 0 {
		result.NoHistory = true
		return result, nil
	}

	result.Entries = make([]candidate.ParetoEntry, 0, len(counts))
	for reason, n := range counts {
		result.Entries = append(result.Entries, candidate.ParetoEntry{Reason: reason, Count: n})
	}
	sort.Slice(result.Entries, func(i, j int) bool {
		a, b := result.Entries[i], result.Entries[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Reason < b.Reason
	})

	var cumulative int
	for i := range result.Entries {
		cumulative += result.Entries[i].Count
		result.Entries[i].Percent = float64(result.Entries[i].Count) / float64(result.Total) * 100
		result.Entries[i].CumulativeShare = float64(cumulative) / float64(result.Total) * 100
	}
	return result, nil
}
