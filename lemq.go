package lttoolbox

import (
	"github.com/bits-and-blooms/bitset"
)

// MoveLemqsLast
// Returns a copy of t where every lemma queue is moved behind the tags that follow it. A path that reads
// "# q1..qn t1..tm" (a "#", the queue characters, then tags up to a final state) reads
// "t1..tm # q1..qn" afterwards, which is the order analyses carry them in.
func (t *Transducer) MoveLemqsLast(a *Alphabet) *Transducer {
	result := NewTransducer()
	if t.GetNumStates() == 0 {
		return result
	}

	mapped := map[int]int{t.initial: result.initial}
	seen := bitset.New(uint(t.GetNumStates()))
	seen.Set(uint(t.initial))
	todo := []int{t.initial}

	tr := NewTransition()
	for len(todo) > 0 {
		src := todo[0]
		todo = todo[1:]
		newSrc := mapped[src]
		if t.IsFinal(src) {
			result.SetFinal(newSrc, true)
		}

		count := t.InitTransition(src, tr)
		for i := 0; i < count; i++ {
			t.GetNextTransition(tr)
			if a.LabelText(tr.Label, Left) == groupSymbol {
				result.copyWithTagsFirst(newSrc, tr.Label, a, t, tr.Dest)
				continue
			}
			newDest, ok := mapped[tr.Dest]
			if !ok {
				newDest = result.CreateState()
				mapped[tr.Dest] = newDest
			}
			if !seen.Test(uint(tr.Dest)) {
				seen.Set(uint(tr.Dest))
				todo = append(todo, tr.Dest)
			}
			result.link(newSrc, newDest, tr.Label)
		}
	}
	return removeDeadStates(result)
}

// copyWithTagsFirst adds to t, starting at start, the paths of src that begin at lemq (the state after a
// "#"), with the tag part first and the lemma queue after groupLabel.
func (t *Transducer) copyWithTagsFirst(start, groupLabel int, a *Alphabet, src *Transducer, lemq int) {
	// The lemma queue region: every state reachable from lemq without reading a tag.
	region := []int{lemq}
	inRegion := bitset.New(uint(src.GetNumStates()))
	inRegion.Set(uint(lemq))
	for i := 0; i < len(region); i++ {
		for _, tr := range src.states[region[i]] {
			if a.IsTag(a.Decode(tr.Label).Left) || inRegion.Test(uint(tr.Dest)) {
				continue
			}
			inRegion.Set(uint(tr.Dest))
			region = append(region, tr.Dest)
		}
	}

	for _, q := range region {
		if !src.IsFinal(q) && !hasTagTransition(src, a, q) {
			continue
		}
		ends := t.copyTags(start, q, a, src)
		if len(ends) == 0 {
			continue
		}
		queue := t.copyLemq(region, lemq, q, a, src)
		for _, end := range ends {
			t.link(end, queue, groupLabel)
		}
	}
}

// copyTags copies the tag transitions of q, and everything after them, onto start. Returns the copies of
// final states, which are left non-final; start itself is one of them if q is final.
func (t *Transducer) copyTags(start, q int, a *Alphabet, src *Transducer) []int {
	var ends []int
	if src.IsFinal(q) {
		ends = append(ends, start)
	}

	mapped := make(map[int]int)
	var todo []int
	visit := func(s int) int {
		if id, ok := mapped[s]; ok {
			return id
		}
		id := t.CreateState()
		mapped[s] = id
		todo = append(todo, s)
		if src.IsFinal(s) {
			ends = append(ends, id)
		}
		return id
	}

	for _, tr := range src.states[q] {
		if a.IsTag(a.Decode(tr.Label).Left) {
			t.link(start, visit(tr.Dest), tr.Label)
		}
	}
	for len(todo) > 0 {
		s := todo[0]
		todo = todo[1:]
		for _, tr := range src.states[s] {
			t.link(mapped[s], visit(tr.Dest), tr.Label)
		}
	}
	return ends
}

// copyLemq copies the lemma queue region with its tag-free transitions only. The copy of q is its only final
// state; returns the copy of lemq.
func (t *Transducer) copyLemq(region []int, lemq, q int, a *Alphabet, src *Transducer) int {
	mapped := make(map[int]int, len(region))
	for _, s := range region {
		mapped[s] = t.CreateState()
	}
	for _, s := range region {
		for _, tr := range src.states[s] {
			if a.IsTag(a.Decode(tr.Label).Left) {
				continue
			}
			t.link(mapped[s], mapped[tr.Dest], tr.Label)
		}
	}
	t.SetFinal(mapped[q], true)
	return mapped[lemq]
}

func hasTagTransition(t *Transducer, a *Alphabet, state int) bool {
	for _, tr := range t.states[state] {
		if a.IsTag(a.Decode(tr.Label).Left) {
			return true
		}
	}
	return false
}
