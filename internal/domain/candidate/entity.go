package candidate

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

const (
	// OfferPending is written in place of the offer date until one is made.
	OfferPending = "PENDING"

	// NotYetOffered is the cycle time of a candidate without an offer date.
	NotYetOffered = -1
)

type Candidate struct {
	ID              string     `json:"candidate_id"`
	Name            string     `json:"name"`
	RoleApplied     string     `json:"role_applied"`
	ApplicationDate time.Time  `json:"application_date"`
	OfferDate       *time.Time `json:"offer_date,omitempty"`
	Status          string     `json:"status"`
}

func (c Candidate) HasOffer() bool {
	return c.OfferDate != nil
}

// CycleTimeDays returns the days from application to offer, or NotYetOffered.
func (c Candidate) CycleTimeDays() int {
	if c.OfferDate == nil {
		return NotYetOffered
	}
	return daysBetween(c.ApplicationDate, *c.OfferDate)
}

// Record renders the candidate as one candidate log line:
// id,name,role,application date,offer date or PENDING,status.
func (c Candidate) Record() string {
	offer := OfferPending
	if c.OfferDate != nil {
		offer = c.OfferDate.Format(validator.DateLayout)
	}
	return strings.Join([]string{
		c.ID,
		c.Name,
		c.RoleApplied,
		c.ApplicationDate.Format(validator.DateLayout),
		offer,
		c.Status,
	}, ",")
}

const secondsPerDay = 24 * 60 * 60

// daysBetween counts calendar days on Unix seconds; time.Duration saturates
// for dates more than about 292 years apart.
func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
