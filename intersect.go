package lttoolbox

const (
	joinSymbol  = "+"
	groupSymbol = "#"

	// noJoin marks a search state that has not crossed a join yet.
	noJoin = -1
)

// searchState One state of the product built by Intersect.
type searchState struct {
	this       int
	other      int
	beforeJoin int
}

var _ Hashable = searchState{}

func (s searchState) Hash() uint64 {
	return mixPair(s.this, s.other, s.beforeJoin)
}

func (s searchState) Equals(other Hashable) bool {
	o, ok := other.(searchState)
	return ok && o == s
}

// Intersect
// Returns the part of t whose output side other accepts as input. The right symbol of every label of t is
// compared by text with the left symbol of labels of other, so the two transducers may use unrelated
// alphabets; the result carries the labels of t.
//
// A "+" on the output side of t joins two analyses: other must be in a final state (or about to read a
// "#") and starts over from its initial state. A "#" output after a join puts other back where it stood
// before the first join, so that the lemma queue following "#" is checked against the first word.
func (t *Transducer) Intersect(other *Transducer, own, otherAlphabet *Alphabet) *Transducer {
	result := NewTransducer()
	ids := NewHashMap[int](WithCapacity(t.GetNumStates()))
	start := searchState{this: t.initial, other: other.initial, beforeJoin: noJoin}
	ids.Set(start, result.initial)
	todo := []searchState{start}

	visit := func(next searchState) int {
		id, created := ids.GetOrSet(next, result.CreateState)
		if created {
			todo = append(todo, next)
		}
		return id
	}

	tr := NewTransition()
	for len(todo) > 0 {
		cur := todo[0]
		todo = todo[1:]
		src, _ := ids.Get(cur)

		if t.IsFinal(cur.this) && other.IsFinal(cur.other) {
			result.SetFinal(src, true)
		}

		// other moves on its own where it reads nothing
		for _, otr := range other.states[cur.other] {
			if otherAlphabet.Decode(otr.Label).Left == 0 {
				dest := visit(searchState{this: cur.this, other: otr.Dest, beforeJoin: cur.beforeJoin})
				result.link(src, dest, Epsilon)
			}
		}

		count := t.InitTransition(cur.this, tr)
		for i := 0; i < count; i++ {
			t.GetNextTransition(tr)
			right := own.Decode(tr.Label).Right
			text := own.SymbolText(right)

			switch {
			case right == 0:
				dest := visit(searchState{this: tr.Dest, other: cur.other, beforeJoin: cur.beforeJoin})
				result.link(src, dest, tr.Label)

			case text == joinSymbol:
				if !other.IsFinal(cur.other) && !hasLeftSymbol(other, otherAlphabet, cur.other, groupSymbol) {
					continue
				}
				before := cur.beforeJoin
				if before == noJoin {
					before = cur.other
				}
				dest := visit(searchState{this: tr.Dest, other: other.initial, beforeJoin: before})
				result.link(src, dest, tr.Label)

			case text == groupSymbol && cur.beforeJoin != noJoin:
				if !other.IsFinal(cur.other) {
					continue
				}
				for _, otr := range other.states[cur.beforeJoin] {
					if otherAlphabet.LabelText(otr.Label, Left) == groupSymbol {
						dest := visit(searchState{this: tr.Dest, other: otr.Dest, beforeJoin: noJoin})
						result.link(src, dest, tr.Label)
					}
				}

			default:
				for _, otr := range other.states[cur.other] {
					left := otherAlphabet.Decode(otr.Label).Left
					if left != 0 && otherAlphabet.SymbolText(left) == text {
						dest := visit(searchState{this: tr.Dest, other: otr.Dest, beforeJoin: cur.beforeJoin})
						result.link(src, dest, tr.Label)
					}
				}
			}
		}
	}
	return result
}

func hasLeftSymbol(t *Transducer, a *Alphabet, state int, text string) bool {
	for _, tr := range t.states[state] {
		if a.LabelText(tr.Label, Left) == text {
			return true
		}
	}
	return false
}
