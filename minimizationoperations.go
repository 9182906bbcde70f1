package lttoolbox

// Minimize
// Minimizes (and determinizes if not already deterministic) the transducer in place using Brzozowski's
// algorithm: reverse, determinize, reverse, determinize. Epsilon transitions and dead states are gone
// afterwards.
func (t *Transducer) Minimize() {
	if t.GetNumStates() == 0 || (!t.IsFinal(t.initial) && t.GetNumTransitionsWithState(t.initial) == 0) {
		// Fastmatch for common case
		t.Clear()
		return
	}
	if t.HasNoFinals() {
		t.Clear()
		return
	}

	t.replace(determinize(reverse(determinize(reverse(t)))))
}

// IsMinimal Returns true if t is deterministic and equal in size to its minimal form. Mostly for tests.
func IsMinimal(t *Transducer) bool {
	if !IsDeterministic(t) {
		return false
	}
	m := t.Clone()
	m.Minimize()
	return m.GetNumStates() == t.GetNumStates() && m.GetNumTransitions() == t.GetNumTransitions()
}

// IsDeterministic Returns true if no state has an epsilon transition or two transitions with the same label.
func IsDeterministic(t *Transducer) bool {
	for _, trans := range t.states {
		for i, tr := range trans {
			if tr.Label == Epsilon {
				return false
			}
			if i > 0 && trans[i-1].Label == tr.Label {
				return false
			}
		}
	}
	return true
}
