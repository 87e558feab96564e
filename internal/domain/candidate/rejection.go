package candidate

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

type RejectionReason string

const (
	ReasonSalaryExpectations RejectionReason = "Salary Expectations Too High"
	ReasonTechnicalSkills    RejectionReason = "Lacks Technical Skills"
	ReasonCultureFit         RejectionReason = "Poor Culture Fit"
	ReasonWithdrew           RejectionReason = "Candidate Ghosted / Withdrew"
	ReasonOther              RejectionReason = "Other"
)

// ReasonMenu lists the selectable reasons; choice "1" is ReasonMenu[0].
var ReasonMenu = []RejectionReason{
	ReasonSalaryExpectations,
	ReasonTechnicalSkills,
	ReasonCultureFit,
	ReasonWithdrew,
	ReasonOther,
}

// ReasonForChoice maps a menu choice to its reason. Anything that is not one
// of the named choices falls back to ReasonOther.
func ReasonForChoice(choice string) RejectionReason {
	switch strings.TrimSpace(choice) {
	case "1":
		return ReasonSalaryExpectations
	case "2":
		return ReasonTechnicalSkills
	case "3":
		return ReasonCultureFit
	case "4":
		return ReasonWithdrew
	default:
		return ReasonOther
	}
}

type RejectionEvent struct {
	CandidateID string          `json:"candidate_id"`
	Reason      RejectionReason `json:"reason"`
	Date        time.Time       `json:"date"`
}

// Record renders the event as one rejection log line: id,reason,date.
func (e RejectionEvent) Record() string {
	return strings.Join([]string{e.CandidateID, string(e.Reason), e.Date.Format(validator.DateLayout)}, ",")
}
