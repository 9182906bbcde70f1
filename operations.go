package lttoolbox

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// IsEmptyTransducer
// Returns true if the given transducer accepts no strings.
func IsEmptyTransducer(t *Transducer) bool {
	if t.GetNumStates() == 0 {
		// Common case: no states
		return true
	}
	if t.HasNoFinals() {
		return true
	}
	if t.IsFinal(t.initial) {
		// Apparently common case: it accepts the damned empty string
		return false
	}

	workList := make([]int, 0)
	seen := bitset.New(uint(t.GetNumStates()))
	workList = append(workList, t.initial)
	seen.Set(uint(t.initial))

	tr := NewTransition()
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if t.IsFinal(state) {
			return false
		}

		count := t.InitTransition(state, tr)
		for i := 0; i < count; i++ {
			t.GetNextTransition(tr)
			if !seen.Test(uint(tr.Dest)) {
				workList = append(workList, tr.Dest)
				seen.Set(uint(tr.Dest))
			}
		}
	}
	return true
}

// removeDeadStates returns a copy without the states that are unreachable from the initial state or that
// cannot reach a final state. The initial state is always kept.
func removeDeadStates(t *Transducer) *Transducer {
	numStates := t.GetNumStates()
	live := getLiveStates(t)
	live.Set(uint(t.initial))

	mp := make([]int, numStates)
	result := &Transducer{
		finals: bitset.New(live.Count()),
		states: make([][]Transition, 0, live.Count()),
	}
	for i := 0; i < numStates; i++ {
		if live.Test(uint(i)) {
			mp[i] = result.CreateState()
			result.SetFinal(mp[i], t.IsFinal(i))
		}
	}
	result.initial = mp[t.initial]

	tr := NewTransition()
	for i := 0; i < numStates; i++ {
		if !live.Test(uint(i)) {
			continue
		}
		count := t.InitTransition(i, tr)
		// filter out transitions to dead states:
		for j := 0; j < count; j++ {
			t.GetNextTransition(tr)
			if live.Test(uint(tr.Dest)) {
				result.link(mp[i], mp[tr.Dest], tr.Label)
			}
		}
	}
	return result
}

func getLiveStates(t *Transducer) *bitset.BitSet {
	live := getLiveStatesFromInitial(t)
	live.InPlaceIntersection(getLiveStatesToAccept(t))
	return live
}

func getLiveStatesFromInitial(t *Transducer) *bitset.BitSet {
	numStates := t.GetNumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}
	workList := []int{t.initial}
	live.Set(uint(t.initial))

	tr := NewTransition()
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		count := t.InitTransition(s, tr)
		for i := 0; i < count; i++ {
			t.GetNextTransition(tr)
			if !live.Test(uint(tr.Dest)) {
				live.Set(uint(tr.Dest))
				workList = append(workList, tr.Dest)
			}
		}
	}

	return live
}

func getLiveStatesToAccept(t *Transducer) *bitset.BitSet {
	numStates := t.GetNumStates()
	live := bitset.New(uint(numStates))

	// Reverse adjacency: incoming[d] lists every source with a transition into d.
	incoming := make([][]int, numStates)
	for s, trans := range t.states {
		for _, tr := range trans {
			incoming[tr.Dest] = append(incoming[tr.Dest], s)
		}
	}

	workList := t.Finals()
	for _, f := range workList {
		live.Set(uint(f))
	}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, src := range incoming[s] {
			if !live.Test(uint(src)) {
				live.Set(uint(src))
				workList = append(workList, src)
			}
		}
	}
	return live
}

// reverse Returns a transducer for the reversed language. State s becomes s+1; the new initial state 0 has
// an epsilon transition to every former final state, and the former initial state is the only final one.
func reverse(t *Transducer) *Transducer {
	numStates := t.GetNumStates()
	result := NewTransducerV1(numStates + 1)
	for s := 0; s < numStates; s++ {
		result.CreateState()
	}
	result.SetFinal(t.initial+1, true)

	for s, trans := range t.states {
		for _, tr := range trans {
			result.link(tr.Dest+1, s+1, tr.Label)
		}
	}
	for _, f := range t.Finals() {
		result.link(result.initial, f+1, Epsilon)
	}
	return result
}

// epsilonClosure adds to set every state reachable through Epsilon transitions.
func epsilonClosure(t *Transducer, set *StateSet) *StateSet {
	stack := set.GetArray()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Epsilon sorts first, so epsilon transitions are a prefix of the state's list.
		for _, tr := range t.states[s] {
			if tr.Label != Epsilon {
				break
			}
			if !set.Contains(tr.Dest) {
				set.Incr(tr.Dest)
				stack = append(stack, tr.Dest)
			}
		}
	}
	return set
}

// determinize Subset construction over pair labels. Epsilon transitions are removed on the way; only
// reachable, non-empty subsets become states.
func determinize(t *Transducer) *Transducer {
	result := NewTransducer()

	initialSet := NewStateSet()
	initialSet.Incr(t.initial)
	start := epsilonClosure(t, initialSet).Freeze(result.initial)

	newState := NewHashMap[int](WithCapacity(t.GetNumStates()))
	newState.Set(start, result.initial)
	worklist := []*FrozenIntSet{start}

	tr := NewTransition()
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		src := current.State()

		moves := make(map[int]*StateSet)
		labels := make([]int, 0)
		for _, s := range current.GetArray() {
			if t.IsFinal(s) {
				result.SetFinal(src, true)
			}
			count := t.InitTransition(s, tr)
			for i := 0; i < count; i++ {
				t.GetNextTransition(tr)
				if tr.Label == Epsilon {
					continue
				}
				dests, ok := moves[tr.Label]
				if !ok {
					dests = NewStateSet()
					moves[tr.Label] = dests
					labels = append(labels, tr.Label)
				}
				if !dests.Contains(tr.Dest) {
					dests.Incr(tr.Dest)
				}
			}
		}

		slices.Sort(labels)
		for _, label := range labels {
			key := epsilonClosure(t, moves[label]).Freeze(-1)
			dest, created := newState.GetOrSet(key, result.CreateState)
			if created {
				worklist = append(worklist, NewFrozenIntSet(key.GetArray(), key.Hash(), dest))
			}
			result.link(src, dest, label)
		}
	}
	return result
}

// UnionWith Adds the language of other to t. Both must use the labels of alphabet; other is copied and
// left untouched.
func (t *Transducer) UnionWith(alphabet *Alphabet, other *Transducer) error {
	if err := other.CheckLabels(alphabet); err != nil {
		return fmt.Errorf("union: %w", err)
	}

	offset := t.Copy(other)
	start := t.CreateState()
	t.link(start, t.initial, Epsilon)
	t.link(start, other.initial+offset, Epsilon)
	t.initial = start
	return nil
}

// AppendDotStar Returns a copy of t followed by any number of loopback symbols: every final state gets a
// self-loop for each label in loopback. Epsilon is never used as a loop.
func (t *Transducer) AppendDotStar(loopback *bitset.BitSet) *Transducer {
	result := t.Clone()
	if loopback == nil {
		return result
	}
	for _, f := range result.Finals() {
		for l, ok := loopback.NextSet(0); ok; l, ok = loopback.NextSet(l + 1) {
			if int(l) == Epsilon {
				continue
			}
			result.link(f, f, int(l))
		}
	}
	return result
}
