package trim

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/geange/lttoolbox"
	"github.com/geange/lttoolbox/dictionary"
)

type options struct {
	logger   *zap.Logger
	progress io.Writer
}

type Option func(*options)

// WithLogger Warnings about cleared sections go to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithProgress Writes one "<name> <states> <transitions>" line per analyser section to w.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

// Trimmer Runs the trim pipeline over dictionaries of T.
type Trimmer[T Automaton[T]] struct {
	newEmpty func() T
	logger   *zap.Logger
	progress io.Writer
}

// New newEmpty must return an automaton with the empty language; it stands in for the union of a bidix
// without sections.
func New[T Automaton[T]](newEmpty func() T, opts ...Option) *Trimmer[T] {
	o := &options{
		logger:   zap.NewNop(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Trimmer[T]{
		newEmpty: newEmpty,
		logger:   o.logger,
		progress: o.progress,
	}
}

// Prefix Builds the automaton analyser sections are intersected with: the minimized union of the bidix
// sections, followed by any sequence of the analyser's tags, with lemma queues moved behind the tags. The
// bidix alphabet gains the analyser tags it did not know.
func (tr *Trimmer[T]) Prefix(mono, bidix *dictionary.Dictionary[T]) (T, error) {
	loopback := bitset.New(0)
	bidix.Alphabet.CreateLoopbackSymbols(loopback, mono.Alphabet, lttoolbox.Right)

	var union T
	if len(bidix.Sections) == 0 {
		union = tr.newEmpty()
	} else {
		union = bidix.Sections[0].Transducer.Clone()
		for _, s := range bidix.Sections[1:] {
			if err := union.UnionWith(bidix.Alphabet, s.Transducer); err != nil {
				var zero T
				return zero, fmt.Errorf("trim: bidix section %q: %w", s.Name, err)
			}
		}
	}
	union.Minimize()

	// not minimized
	prefix := union.AppendDotStar(loopback)
	return prefix.MoveLemqsLast(bidix.Alphabet), nil
}

// Trim Replaces every section of mono by the part the bidix can translate. Sections without transitions and
// sections left without a final state are cleared. Returns ErrEmptyTransducer, together with the report,
// when no section of mono is left.
func (tr *Trimmer[T]) Trim(mono, bidix *dictionary.Dictionary[T]) (*Report, error) {
	prefix, err := tr.Prefix(mono, bidix)
	if err != nil {
		return nil, err
	}

	report := &Report{Sections: make([]SectionReport, 0, len(mono.Sections))}
	for i := range mono.Sections {
		section := &mono.Sections[i]
		trimmed := section.Transducer.Intersect(prefix, mono.Alphabet, bidix.Alphabet)

		entry := SectionReport{
			Name:        section.Name,
			States:      section.Transducer.Size(),
			Transitions: section.Transducer.NumberOfTransitions(),
		}
		if _, err := fmt.Fprintf(tr.progress, "%s %d %d\n", entry.Name, entry.States, entry.Transitions); err != nil {
			return nil, fmt.Errorf("trim: progress: %w", err)
		}

		switch {
		case entry.Transitions == 0:
			entry.Outcome = EmptySection
			tr.logger.Warn("empty section! Skipping it ...", zap.String("section", section.Name))
			section.Transducer.Clear()
		case trimmed.HasNoFinals():
			entry.Outcome = NoFinals
			tr.logger.Warn("section had no final state after trimming! Skipping it ...",
				zap.String("section", section.Name))
			section.Transducer.Clear()
		default:
			entry.Outcome = Kept
			trimmed.Minimize()
			section.Transducer = trimmed
		}
		report.Sections = append(report.Sections, entry)
	}

	if live(mono) == 0 {
		return report, ErrEmptyTransducer
	}
	return report, nil
}

func live[T Automaton[T]](d *dictionary.Dictionary[T]) int {
	n := 0
	for _, s := range d.Sections {
		if !s.Transducer.IsEmpty() {
			n++
		}
	}
	return n
}
