package trim

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/mock"

	"github.com/geange/lttoolbox"
)

type mockAutomaton struct {
	mock.Mock
	name string
}

var _ Automaton[*mockAutomaton] = (*mockAutomaton)(nil)

func newMock(name string) *mockAutomaton {
	return &mockAutomaton{name: name}
}

func (m *mockAutomaton) IsEmpty() bool {
	return m.Called().Bool(0)
}

func (m *mockAutomaton) HasNoFinals() bool {
	return m.Called().Bool(0)
}

func (m *mockAutomaton) Size() int {
	return m.Called().Int(0)
}

func (m *mockAutomaton) NumberOfTransitions() int {
	return m.Called().Int(0)
}

func (m *mockAutomaton) UnionWith(alphabet *lttoolbox.Alphabet, other *mockAutomaton) error {
	return m.Called(alphabet, other).Error(0)
}

func (m *mockAutomaton) Minimize() {
	m.Called()
}

func (m *mockAutomaton) AppendDotStar(loopback *bitset.BitSet) *mockAutomaton {
	return m.Called(loopback).Get(0).(*mockAutomaton)
}

func (m *mockAutomaton) MoveLemqsLast(alphabet *lttoolbox.Alphabet) *mockAutomaton {
	return m.Called(alphabet).Get(0).(*mockAutomaton)
}

func (m *mockAutomaton) Intersect(other *mockAutomaton, own, otherAlphabet *lttoolbox.Alphabet) *mockAutomaton {
	return m.Called(other, own, otherAlphabet).Get(0).(*mockAutomaton)
}

func (m *mockAutomaton) Clear() {
	m.Called()
}

func (m *mockAutomaton) Clone() *mockAutomaton {
	return m.Called().Get(0).(*mockAutomaton)
}
