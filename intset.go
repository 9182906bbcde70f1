package lttoolbox

import (
	"slices"
)

// IntSet A set of states used as a key while building a subset construction.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

// hashInts is order independent, so a StateSet and the FrozenIntSet made from it hash the same.
func hashInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix(v))
	}
	return h
}

func sameInts(a, b IntSet) bool {
	if a.Size() != b.Size() || a.Hash() != b.Hash() {
		return false
	}
	return slices.Equal(a.GetArray(), b.GetArray())
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of states, plus the state it was assigned in the result.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Two sets are equal when they hold the same states; the assigned state is not compared.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		switch o := other.(type) {
		case *FrozenIntSet:
			return o == nil
		case *StateSet:
			return o == nil
		default:
			return false
		}
	}

	switch o := other.(type) {
	case *FrozenIntSet:
		if o == nil {
			return false
		}
	case *StateSet:
		if o == nil {
			return false
		}
	}

	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return sameInts(f, is)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the state this set was frozen for.
func (f *FrozenIntSet) State() int {
	return f.state
}

var _ IntSet = &StateSet{}

// StateSet A mutable set of states. Its hash is cached until the content changes.
type StateSet struct {
	inner       map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[int]struct{}),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	keys := make([]int, 0, len(s.inner))
	for key := range s.inner {
		keys = append(keys, key)
	}
	s.hashCode = hashInts(keys)
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return sameInts(s, is)
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, len(s.inner))

	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) Contains(state int) bool {
	_, ok := s.inner[state]
	return ok
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Incr Adds state to the set.
func (s *StateSet) Incr(state int) {
	if _, ok := s.inner[state]; ok {
		return
	}
	s.inner[state] = struct{}{}
	s.keyChanged()
}

// Freeze Returns an immutable copy of the current content.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}
