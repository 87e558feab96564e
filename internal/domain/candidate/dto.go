package candidate

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

// CandidateInput holds the raw answers collected for a new candidate.
type CandidateInput struct {
	ID              string `json:"candidate_id"`
	Name            string `json:"name"`
	RoleApplied     string `json:"role_applied"`
	ApplicationDate string `json:"application_date"`
	OfferDate       string `json:"offer_date"` // blank or PENDING when no offer yet
	Status          string `json:"status"`
}

// ToCandidate parses the input. Every problem is reported at once as
// validator.ValidationErrors; no Candidate is returned unless all fields pass.
func (r *CandidateInput) ToCandidate() (Candidate, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "candidate_id is required"})
	}

	for _, f := range []struct{ name, value string }{
		{"candidate_id", r.ID},
		{"name", r.Name},
		{"role_applied", r.RoleApplied},
		{"status", r.Status},
	} {
		if validator.HasDelimiter(f.value) {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " must not contain commas or line breaks"})
		}
	}

	applied, ok := validator.IsValidDate(r.ApplicationDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "application_date",
			Message: "application_date must be in YYYY-MM-DD format",
		})
	}

	var offer *time.Time
	if !isPending(r.OfferDate) {
		d, ok := validator.IsValidDate(r.OfferDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "offer_date",
				Message: "offer_date must be in YYYY-MM-DD format or " + OfferPending,
			})
		} else {
			offer = &d
		}
	}

	if len(errs) > 0 {
		return Candidate{}, errs
	}

	return Candidate{
		ID:              r.ID,
		Name:            r.Name,
		RoleApplied:     r.RoleApplied,
		ApplicationDate: applied,
		OfferDate:       offer,
		Status:          r.Status,
	}, nil
}

func isPending(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, OfferPending)
}

// CandidateOutcome is the result of logging one candidate.
type CandidateOutcome struct {
	Candidate     Candidate `json:"candidate"`
	CycleTimeDays int       `json:"cycle_time_days"`
	Bottleneck    bool      `json:"bottleneck"`
}

// RejectionInput holds the raw answers collected for a rejection.
type RejectionInput struct {
	CandidateID string `json:"candidate_id"`
	Choice      string `json:"choice"`
}

func (r *RejectionInput) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "candidate_id is required"})
	} else if validator.HasDelimiter(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "candidate_id must not contain commas or line breaks"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectionOutcome struct {
	Event RejectionEvent `json:"event"`
}

// ParetoEntry is one reason's share of all logged rejections.
type ParetoEntry struct {
	Reason          string  `json:"reason"`
	Count           int     `json:"count"`
	Percent         float64 `json:"percent"`
	CumulativeShare float64 `json:"cumulative_percent"`
}

// ParetoReport ranks rejection reasons by count, descending, ties by name.
type ParetoReport struct {
	GeneratedAt time.Time     `json:"generated_at"`
	NoHistory   bool          `json:"no_history"`
	Total       int           `json:"total"`
	Entries     []ParetoEntry `json:"entries"`
}

// FocusArea returns the top-ranked reason, or "" when there is none.
func (p ParetoReport) FocusArea() string {
	if len(p.Entries) == 0 {
		return ""
	}
	return p.Entries[0].Reason
}
