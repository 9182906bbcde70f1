package lttoolbox

import (
	"fmt"
)

// Automata Factory for small transducers, mostly used to build dictionaries by hand.
type Automata struct {
}

// MakeEmpty
// Returns a new transducer with the empty language.
func (*Automata) MakeEmpty() *Transducer {
	return NewTransducer()
}

// MakeEmptyString
// Returns a new transducer that accepts only the empty string.
func (*Automata) MakeEmptyString() *Transducer {
	t := NewTransducer()
	t.SetFinal(t.initial, true)
	return t
}

// MakeEntry
// Returns a new transducer that maps left to right. Symbols are paired up position by position, the shorter
// side is padded with the empty symbol.
func (*Automata) MakeEntry(a *Alphabet, left, right string) (*Transducer, error) {
	t := NewTransducer()
	if err := t.InsertEntry(a, left, right); err != nil {
		return nil, err
	}
	return t, nil
}

// MakeIdentity
// Returns a new transducer that maps each of the given symbols to itself, once.
func (*Automata) MakeIdentity(a *Alphabet, symbols ...string) (*Transducer, error) {
	t := NewTransducer()
	final := t.CreateState()
	t.SetFinal(final, true)
	for _, s := range symbols {
		tokens, err := a.Tokenize(s)
		if err != nil {
			return nil, err
		}
		if len(tokens) != 1 {
			return nil, fmt.Errorf("%w: %q is not a single symbol", ErrMalformedSymbol, s)
		}
		t.link(t.initial, final, a.Pair(tokens[0], tokens[0]))
	}
	return t, nil
}

// InsertEntry Adds a path from the initial state to a new final state that maps left to right. Tags are
// registered in the alphabet when needed.
func (t *Transducer) InsertEntry(a *Alphabet, left, right string) error {
	l, err := a.Tokenize(left)
	if err != nil {
		return err
	}
	r, err := a.Tokenize(right)
	if err != nil {
		return err
	}

	state := t.initial
	for i := 0; i < max(len(l), len(r)); i++ {
		var p Pair
		if i < len(l) {
			p.Left = l[i]
		}
		if i < len(r) {
			p.Right = r[i]
		}
		next := t.CreateState()
		t.link(state, next, a.Pair(p.Left, p.Right))
		state = next
	}
	t.SetFinal(state, true)
	return nil
}
