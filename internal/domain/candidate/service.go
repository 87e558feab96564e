package candidate

import "context"

type RecruitmentService interface {
	// LogCandidate validates in, appends the candidate to the candidate log
	// and reports its cycle time.
	LogCandidate(ctx context.Context, in CandidateInput) (CandidateOutcome, error)

	// LogRejection appends a rejection dated today to the rejection log.
	LogRejection(ctx context.Context, in RejectionInput) (RejectionOutcome, error)

	// Pareto re-reads the whole rejection log and ranks the reasons.
	Pareto(ctx context.Context) (ParetoReport, error)
}
