package lttoolbox

import (
	"errors"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

var ErrMalformedTransducer = errors.New("lttoolbox: malformed transducer")

// Write Serializes the transducer in the lttoolbox layout:
//
//	initial
//	number of finals, then each final as the difference to the previous one
//	number of states, then for each state: number of transitions, then for each transition
//	the label as the difference to the previous label and the dest as a forward offset modulo the
//	number of states
func (t *Transducer) Write(w io.ByteWriter) error {
	if err := WriteMultibyte(w, t.initial); err != nil {
		return err
	}

	finals := t.Finals()
	if err := WriteMultibyte(w, len(finals)); err != nil {
		return err
	}
	base := 0
	for _, f := range finals {
		if err := WriteMultibyte(w, f-base); err != nil {
			return err
		}
		base = f
	}

	numStates := len(t.states)
	if err := WriteMultibyte(w, numStates); err != nil {
		return err
	}
	for s, trans := range t.states {
		if err := WriteMultibyte(w, len(trans)); err != nil {
			return err
		}
		labelBase := 0
		for _, tr := range trans {
			if err := WriteMultibyte(w, tr.Label-labelBase); err != nil {
				return err
			}
			labelBase = tr.Label

			offset := tr.Dest - s
			if tr.Dest < s {
				offset += numStates
			}
			if err := WriteMultibyte(w, offset); err != nil {
				return err
			}
		}
	}
	return nil
}

// Read Replaces the content of the transducer with the one read from r. An end of stream before the first
// byte is reported as io.EOF, anywhere else as io.ErrUnexpectedEOF.
func (t *Transducer) Read(r io.ByteReader) error {
	initial, err := ReadMultibyte(r)
	if err != nil {
		return err
	}

	numFinals, err := ReadMultibyte(r)
	if err != nil {
		return unexpected(err)
	}
	finals := make([]int, 0, min(numFinals, 1024))
	base := 0
	for i := 0; i < numFinals; i++ {
		delta, err := ReadMultibyte(r)
		if err != nil {
			return unexpected(err)
		}
		base += delta
		finals = append(finals, base)
	}

	numStates, err := ReadMultibyte(r)
	if err != nil {
		return unexpected(err)
	}

	if numStates == 0 {
		if initial != 0 || numFinals != 0 {
			return fmt.Errorf("%w: no states but initial %d and %d finals", ErrMalformedTransducer, initial, numFinals)
		}
		t.Clear()
		return nil
	}
	if initial >= numStates {
		return fmt.Errorf("%w: initial state %d of %d", ErrMalformedTransducer, initial, numStates)
	}

	result := &Transducer{
		initial: initial,
		finals:  bitset.New(uint(min(numStates, 1024))),
		states:  make([][]Transition, 0, min(numStates, 1024)),
	}
	for _, f := range finals {
		if f >= numStates {
			return fmt.Errorf("%w: final state %d of %d", ErrMalformedTransducer, f, numStates)
		}
	}

	// The state count is only trusted as far as the stream holds states.
	for s := 0; s < numStates; s++ {
		result.CreateState()
		count, err := ReadMultibyte(r)
		if err != nil {
			return unexpected(err)
		}
		label := 0
		for j := 0; j < count; j++ {
			delta, err := ReadMultibyte(r)
			if err != nil {
				return unexpected(err)
			}
			offset, err := ReadMultibyte(r)
			if err != nil {
				return unexpected(err)
			}
			label += delta
			result.link(s, (s+offset)%numStates, label)
		}
	}
	for _, f := range finals {
		result.SetFinal(f, true)
	}

	t.replace(result)
	return nil
}

// CheckLabels Returns ErrUnknownLabel if some transition uses a label the alphabet does not define.
func (t *Transducer) CheckLabels(a *Alphabet) error {
	for _, label := range t.Labels() {
		if !a.HasLabel(label) {
			return fmt.Errorf("%w: %d (alphabet has %d pairs)", ErrUnknownLabel, label, a.PairCount())
		}
	}
	return nil
}
