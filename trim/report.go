package trim

import (
	"errors"
)

// ErrEmptyTransducer is returned when no section survives trimming. Nothing should be written then.
var ErrEmptyTransducer = errors.New("trim: trimming gave empty transducer")

// Outcome What happened to one analyser section.
type Outcome int

const (
	// Kept the section was replaced by its trimmed, minimized form.
	Kept Outcome = iota
	// EmptySection the section had no transitions to begin with and was cleared.
	EmptySection
	// NoFinals nothing of the section survived the intersection; it was cleared.
	NoFinals
)

func (o Outcome) String() string {
	switch o {
	case Kept:
		return "kept"
	case EmptySection:
		return "empty section"
	case NoFinals:
		return "no final state after trimming"
	default:
		return "unknown"
	}
}

// SectionReport The size of a section before trimming and its outcome.
type SectionReport struct {
	Name        string
	States      int
	Transitions int
	Outcome     Outcome
}

type Report struct {
	Sections []SectionReport
}

// Kept Number of sections that survived.
func (r *Report) Kept() int {
	n := 0
	for _, s := range r.Sections {
		if s.Outcome == Kept {
			n++
		}
	}
	return n
}

// Cleared Names of the sections that were cleared, in order.
func (r *Report) Cleared() []string {
	var names []string
	for _, s := range r.Sections {
		if s.Outcome != Kept {
			names = append(names, s.Name)
		}
	}
	return names
}
