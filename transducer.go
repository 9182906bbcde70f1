package lttoolbox

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrStateOutOfRange = errors.New("lttoolbox: state out of range")
	ErrNegativeLabel   = errors.New("lttoolbox: negative label")
	ErrUnknownLabel    = errors.New("lttoolbox: label not in alphabet")
)

// Transducer Represents a transducer and all its states and transitions. States are integers and must be
// created using CreateState. Mark a state as final using SetFinal. Add transitions using AddTransition.
// Transition labels are pair labels of an Alphabet; label Epsilon consumes nothing on either side.
// Unlike a DFA, several transitions may leave a state with the same label.
//
// The transitions of a state are always kept sorted by label, then dest, and a transition that already
// exists is not added twice.
type Transducer struct {
	initial int

	finals *bitset.BitSet

	// Outgoing transitions for each state.
	states [][]Transition
}

// Transition A single labeled edge. Used as a cursor by InitTransition/GetNextTransition.
type Transition struct {
	Source int
	Dest   int
	Label  int

	TransitionUpto int
}

// NewTransducer Returns a transducer with a single, non-final, initial state.
func NewTransducer() *Transducer {
	return NewTransducerV1(1)
}

func NewTransducerV1(numStates int) *Transducer {
	t := &Transducer{
		finals: bitset.New(uint(numStates)),
		states: make([][]Transition, 0, max(numStates, 1)),
	}
	t.initial = t.CreateState()
	return t
}

func NewTransition() *Transition {
	return &Transition{}
}

// CreateState Create a new state.
func (t *Transducer) CreateState() int {
	t.states = append(t.states, nil)
	return len(t.states) - 1
}

// Initial Returns the initial state.
func (t *Transducer) Initial() int {
	return t.initial
}

// SetInitial Moves the initial state.
func (t *Transducer) SetInitial(state int) error {
	if err := t.checkState(state); err != nil {
		return err
	}
	t.initial = state
	return nil
}

// SetFinal Set or clear this state as a final state.
func (t *Transducer) SetFinal(state int, final bool) {
	t.finals.SetTo(uint(state), final)
}

// IsFinal Returns true if this state is a final state.
func (t *Transducer) IsFinal(state int) bool {
	return t.finals.Test(uint(state))
}

// Finals Returns the final states in ascending order.
func (t *Transducer) Finals() []int {
	finals := make([]int, 0, t.finals.Count())
	for i, ok := t.finals.NextSet(0); ok && int(i) < len(t.states); i, ok = t.finals.NextSet(i + 1) {
		finals = append(finals, int(i))
	}
	return finals
}

// AddTransition Add a new transition with the specified source, dest and label.
func (t *Transducer) AddTransition(source, dest, label int) error {
	if err := t.checkState(source); err != nil {
		return err
	}
	if err := t.checkState(dest); err != nil {
		return err
	}
	if label < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLabel, label)
	}
	t.link(source, dest, label)
	return nil
}

// link adds the transition without bounds checks. Both states must exist.
func (t *Transducer) link(source, dest, label int) {
	trans := t.states[source]
	i := sort.Search(len(trans), func(i int) bool {
		if trans[i].Label != label {
			return trans[i].Label > label
		}
		return trans[i].Dest >= dest
	})
	if i < len(trans) && trans[i].Label == label && trans[i].Dest == dest {
		return
	}

	trans = append(trans, Transition{})
	copy(trans[i+1:], trans[i:])
	trans[i] = Transition{Source: source, Dest: dest, Label: label}
	t.states[source] = trans
}

func (t *Transducer) checkState(state int) error {
	if state < 0 || state >= len(t.states) {
		return fmt.Errorf("%w: %d (have %d states)", ErrStateOutOfRange, state, len(t.states))
	}
	return nil
}

// InitTransition Initialize the provided Transition to iterate through all transitions leaving the specified
// state. You must call GetNextTransition to get each transition. Returns the number of transitions leaving
// this state.
func (t *Transducer) InitTransition(state int, tr *Transition) int {
	tr.Source = state
	tr.TransitionUpto = 0
	return len(t.states[state])
}

// GetNextTransition Iterate to the next transition after the provided one.
func (t *Transducer) GetNextTransition(tr *Transition) {
	next := t.states[tr.Source][tr.TransitionUpto]
	tr.Dest = next.Dest
	tr.Label = next.Label
	tr.TransitionUpto++
}

// GetNumStates How many states this transducer has.
func (t *Transducer) GetNumStates() int {
	return len(t.states)
}

// GetNumTransitions How many transitions this transducer has.
func (t *Transducer) GetNumTransitions() int {
	n := 0
	for _, trans := range t.states {
		n += len(trans)
	}
	return n
}

// GetNumTransitionsWithState How many transitions this state has.
func (t *Transducer) GetNumTransitionsWithState(state int) int {
	return len(t.states[state])
}

// Labels Returns every label used by some transition, ascending.
func (t *Transducer) Labels() []int {
	seen := bitset.New(0)
	for _, trans := range t.states {
		for _, tr := range trans {
			seen.Set(uint(tr.Label))
		}
	}
	labels := make([]int, 0, seen.Count())
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		labels = append(labels, int(i))
	}
	return labels
}

// Copy Copies over all states/transitions from other. The state numbers are sequentially assigned
// (appended); the returned offset maps state s of other to s+offset. Final states are copied too.
func (t *Transducer) Copy(other *Transducer) int {
	offset := len(t.states)

	for s, trans := range other.states {
		copied := make([]Transition, len(trans))
		for i, tr := range trans {
			copied[i] = Transition{Source: s + offset, Dest: tr.Dest + offset, Label: tr.Label}
		}
		t.states = append(t.states, copied)
	}

	for _, f := range other.Finals() {
		t.SetFinal(f+offset, true)
	}
	return offset
}

// Clone Returns an independent copy.
func (t *Transducer) Clone() *Transducer {
	c := &Transducer{
		finals: bitset.New(uint(len(t.states))),
		states: make([][]Transition, 0, len(t.states)),
	}
	c.Copy(t)
	c.initial = t.initial
	return c
}

// Clear Empties the transducer in place: one non-final initial state and no transitions.
func (t *Transducer) Clear() {
	t.finals = bitset.New(1)
	t.states = make([][]Transition, 0, 1)
	t.initial = t.CreateState()
}

// replace takes over the content of other.
func (t *Transducer) replace(other *Transducer) {
	t.initial = other.initial
	t.finals = other.finals
	t.states = other.states
}

// Size Number of states.
func (t *Transducer) Size() int {
	return t.GetNumStates()
}

// NumberOfTransitions Number of transitions over all states.
func (t *Transducer) NumberOfTransitions() int {
	return t.GetNumTransitions()
}

// HasNoFinals Returns true if no state is final.
func (t *Transducer) HasNoFinals() bool {
	return len(t.Finals()) == 0
}

// IsEmpty Returns true if no final state can be reached from the initial state.
func (t *Transducer) IsEmpty() bool {
	return IsEmptyTransducer(t)
}

func (t *Transducer) String() string {
	return fmt.Sprintf("Transducer{states: %d, transitions: %d, finals: %v}",
		t.GetNumStates(), t.GetNumTransitions(), t.Finals())
}
