package lttoolbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransducer(t *testing.T) {
	tr := NewTransducer()
	assert.Equal(t, 1, tr.GetNumStates())
	assert.Equal(t, 0, tr.GetNumTransitions())
	assert.Equal(t, 0, tr.Initial())
	assert.True(t, tr.HasNoFinals())
	assert.True(t, tr.IsEmpty())
}

func TestAddTransition(t *testing.T) {
	tr := NewTransducer()
	s1 := tr.CreateState()
	s2 := tr.CreateState()

	require.NoError(t, tr.AddTransition(0, s2, 3))
	require.NoError(t, tr.AddTransition(0, s1, 3))
	require.NoError(t, tr.AddTransition(0, s1, 1))
	require.NoError(t, tr.AddTransition(0, s1, 3))

	assert.ErrorIs(t, tr.AddTransition(0, 7, 1), ErrStateOutOfRange)
	assert.ErrorIs(t, tr.AddTransition(-1, 0, 1), ErrStateOutOfRange)
	assert.ErrorIs(t, tr.AddTransition(0, 1, -2), ErrNegativeLabel)
	assert.ErrorIs(t, tr.SetInitial(3), ErrStateOutOfRange)

	// sorted by label, then dest, no duplicates
	assert.Equal(t, 3, tr.GetNumTransitionsWithState(0))
	var got [][2]int
	it := NewTransition()
	count := tr.InitTransition(0, it)
	for i := 0; i < count; i++ {
		tr.GetNextTransition(it)
		assert.Equal(t, 0, it.Source)
		got = append(got, [2]int{it.Label, it.Dest})
	}
	assert.Equal(t, [][2]int{{1, s1}, {3, s1}, {3, s2}}, got)
	assert.Equal(t, []int{1, 3}, tr.Labels())
}

func TestFinals(t *testing.T) {
	tr := NewTransducer()
	s1 := tr.CreateState()
	s2 := tr.CreateState()
	tr.SetFinal(s2, true)
	tr.SetFinal(s1, true)
	assert.Equal(t, []int{s1, s2}, tr.Finals())

	tr.SetFinal(s1, false)
	assert.Equal(t, []int{s2}, tr.Finals())
	assert.False(t, tr.HasNoFinals())

	// a final state nothing reaches
	assert.True(t, tr.IsEmpty())
	require.NoError(t, tr.AddTransition(0, s2, 1))
	assert.False(t, tr.IsEmpty())
}

func TestCopyAndClone(t *testing.T) {
	a := NewTransducer()
	s := a.CreateState()
	a.SetFinal(s, true)
	require.NoError(t, a.AddTransition(0, s, 1))

	b := NewTransducer()
	offset := b.Copy(a)
	assert.Equal(t, 1, offset)
	assert.Equal(t, 3, b.GetNumStates())
	assert.True(t, b.IsFinal(s+offset))
	assert.Equal(t, []int{1}, b.Labels())

	c := a.Clone()
	require.NoError(t, c.AddTransition(s, 0, 2))
	c.SetFinal(0, true)
	assert.Equal(t, 1, a.GetNumTransitions())
	assert.False(t, a.IsFinal(0))
	assert.Equal(t, 2, c.GetNumTransitions())
	assert.Equal(t, a.Initial(), c.Initial())
}

func TestClear(t *testing.T) {
	a := NewTransducer()
	s := a.CreateState()
	a.SetFinal(s, true)
	require.NoError(t, a.AddTransition(0, s, 1))
	c := a.Clone()

	a.Clear()
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 0, a.NumberOfTransitions())
	assert.True(t, a.HasNoFinals())
	assert.Equal(t, 0, a.Initial())

	// clones do not share state with the cleared transducer
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 1, c.NumberOfTransitions())
}
