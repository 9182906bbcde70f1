package trim

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/geange/lttoolbox"
)

// Automaton The operations the trim pipeline needs from a transducer. T is the implementing type itself.
type Automaton[T any] interface {
	// IsEmpty reports whether no final state is reachable.
	IsEmpty() bool
	// HasNoFinals reports whether no state is final at all.
	HasNoFinals() bool
	Size() int
	NumberOfTransitions() int

	UnionWith(alphabet *lttoolbox.Alphabet, other T) error
	Minimize()
	AppendDotStar(loopback *bitset.BitSet) T
	MoveLemqsLast(alphabet *lttoolbox.Alphabet) T
	Intersect(other T, own, otherAlphabet *lttoolbox.Alphabet) T

	Clear()
	Clone() T
}

var _ Automaton[*lttoolbox.Transducer] = (*lttoolbox.Transducer)(nil)
