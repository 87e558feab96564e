package employee

import "strings"

type StatusKind int

const (
	StatusMissing StatusKind = iota
	StatusActive
	StatusProbation
	StatusNoticePeriod
	StatusExited
	StatusUnrecognized
)

func (k StatusKind) String() string {
	switch k {
	case StatusActive:
		return "Active"
	case StatusProbation:
		return "Probation"
	case StatusNoticePeriod:
		return "Notice Period"
	case StatusExited:
		return "Exited"
	case StatusUnrecognized:
		return "Unrecognized"
	default:
		return "Missing"
	}
}

// Status is an employment status. Raw keeps the text as it appeared in the
// source so unrecognized values survive a round trip.
type Status struct {
	Kind StatusKind
	Raw  string
}

// ParseStatus matches raw case-insensitively after trimming whitespace.
func ParseStatus(raw string) Status {
	var kind StatusKind
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		kind = StatusMissing
	case "active":
		kind = StatusActive
	case "probation":
		kind = StatusProbation
	case "notice period":
		kind = StatusNoticePeriod
	case "exited":
		kind = StatusExited
	default:
		kind = StatusUnrecognized
	}
	return Status{Kind: kind, Raw: raw}
}

func (s Status) String() string {
	if s.Raw != "" || s.Kind == StatusMissing {
		return s.Raw
	}
	return s.Kind.String()
}

type GenderKind int

const (
	GenderMissing GenderKind = iota
	GenderMale
	GenderFemale
	GenderUnrecognized
)

func (k GenderKind) String() string {
	switch k {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	case GenderUnrecognized:
		return "Unrecognized"
	default:
		return "Missing"
	}
}

type Gender struct {
	Kind GenderKind
	Raw  string
}

// ParseGender accepts "M" and "F" in any case; anything else non-blank is
// kept as GenderUnrecognized.
func ParseGender(raw string) Gender {
	var kind GenderKind
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		kind = GenderMissing
	case "M":
		kind = GenderMale
	case "F":
		kind = GenderFemale
	default:
		kind = GenderUnrecognized
	}
	return Gender{Kind: kind, Raw: raw}
}

func (g Gender) String() string {
	if g.Raw != "" || g.Kind == GenderMissing {
		return g.Raw
	}
	return g.Kind.String()
}
