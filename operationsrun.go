package lttoolbox

// Run
// Returns true if t accepts the sequence of labels. Epsilon transitions are followed for free; t does not
// need to be deterministic.
func Run(t *Transducer, labels []int) bool {
	start := NewStateSet()
	start.Incr(t.initial)
	current := epsilonClosure(t, start)

	for _, label := range labels {
		next := NewStateSet()
		for _, s := range current.GetArray() {
			for _, tr := range t.states[s] {
				if tr.Label == label && !next.Contains(tr.Dest) {
					next.Incr(tr.Dest)
				}
			}
		}
		if next.Size() == 0 {
			return false
		}
		current = epsilonClosure(t, next)
	}

	for _, s := range current.GetArray() {
		if t.IsFinal(s) {
			return true
		}
	}
	return false
}

type runState struct {
	state int
	left  int
	right int
}

// Transduces
// Returns true if t has a path that reads left on the input side and writes right on the output side.
// Symbols of both strings are tokenized with a; an empty symbol on a label consumes nothing on that side.
func Transduces(t *Transducer, a *Alphabet, left, right string) (bool, error) {
	l, err := a.Tokenize(left)
	if err != nil {
		return false, err
	}
	r, err := a.Tokenize(right)
	if err != nil {
		return false, err
	}

	start := runState{state: t.initial}
	seen := map[runState]bool{start: true}
	workList := []runState{start}
	for len(workList) > 0 {
		cur := workList[0]
		workList = workList[1:]
		if cur.left == len(l) && cur.right == len(r) && t.IsFinal(cur.state) {
			return true, nil
		}

		for _, tr := range t.states[cur.state] {
			if !a.HasLabel(tr.Label) {
				continue
			}
			p := a.Decode(tr.Label)
			next := runState{state: tr.Dest, left: cur.left, right: cur.right}
			if p.Left != 0 {
				if cur.left == len(l) || l[cur.left] != p.Left {
					continue
				}
				next.left++
			}
			if p.Right != 0 {
				if cur.right == len(r) || r[cur.right] != p.Right {
					continue
				}
				next.right++
			}
			if !seen[next] {
				seen[next] = true
				workList = append(workList, next)
			}
		}
	}
	return false, nil
}
