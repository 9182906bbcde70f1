package lttoolbox

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefixFor builds the bidix side of a trim: the minimized bidix, loops over the analyser's tags, lemma queues
// moved last.
func prefixFor(t *testing.T, mono, bidix *Alphabet, entries ...[2]string) *Transducer {
	t.Helper()
	loopback := bitset.New(0)
	bidix.CreateLoopbackSymbols(loopback, mono, Right)
	tr := makeDictionary(t, bidix, entries...)
	tr.Minimize()
	return tr.AppendDotStar(loopback).MoveLemqsLast(bidix)
}

func TestIntersect(t *testing.T) {
	mono := NewAlphabet()
	analyser := makeDictionary(t, mono,
		[2]string{"cats", "cat<n><pl>"},
		[2]string{"cat", "cat<n><sg>"},
		[2]string{"dogs", "dog<n><pl>"},
	)

	bidix := NewAlphabet()
	prefix := prefixFor(t, mono, bidix, [2]string{"cat<n>", "gato<n>"})

	got := analyser.Intersect(prefix, mono, bidix)
	got.Minimize()
	assertTransduces(t, got, mono, "cats", "cat<n><pl>", true)
	assertTransduces(t, got, mono, "cat", "cat<n><sg>", true)
	assertTransduces(t, got, mono, "dogs", "dog<n><pl>", false)
	assert.NoError(t, got.CheckLabels(mono))
}

func TestIntersectNothingInCommon(t *testing.T) {
	mono := NewAlphabet()
	analyser := makeDictionary(t, mono, [2]string{"dogs", "dog<n><pl>"})

	bidix := NewAlphabet()
	prefix := prefixFor(t, mono, bidix, [2]string{"cat<n>", "gato<n>"})

	got := analyser.Intersect(prefix, mono, bidix)
	assert.True(t, got.HasNoFinals())
}

func TestIntersectEmptyOutput(t *testing.T) {
	mono := NewAlphabet()
	// the last label writes nothing, the prefix does not have to move for it
	analyser := makeDictionary(t, mono, [2]string{"a<n>x", "a<n>"})

	bidix := NewAlphabet()
	prefix := prefixFor(t, mono, bidix, [2]string{"a<n>", "b<n>"})

	got := analyser.Intersect(prefix, mono, bidix)
	assert.False(t, got.IsEmpty())
	assertTransduces(t, got, mono, "a<n>x", "a<n>", true)
}

func TestIntersectJoin(t *testing.T) {
	mono := NewAlphabet()
	analyser := makeDictionary(t, mono,
		[2]string{"au", "a<pr>+le<det>"},
		[2]string{"aux", "a<pr>+les<det>"},
	)

	t.Run("both parts known", func(t *testing.T) {
		bidix := NewAlphabet()
		prefix := prefixFor(t, mono, bidix,
			[2]string{"a<pr>", "to<pr>"},
			[2]string{"le<det>", "the<det>"},
		)
		got := analyser.Intersect(prefix, mono, bidix)
		assertTransduces(t, got, mono, "au", "a<pr>+le<det>", true)
		assertTransduces(t, got, mono, "aux", "a<pr>+les<det>", false)
	})

	t.Run("second part unknown", func(t *testing.T) {
		bidix := NewAlphabet()
		prefix := prefixFor(t, mono, bidix, [2]string{"a<pr>", "to<pr>"})
		got := analyser.Intersect(prefix, mono, bidix)
		assert.True(t, got.HasNoFinals())
	})

	t.Run("join needs a complete first part", func(t *testing.T) {
		bidix := NewAlphabet()
		prefix := prefixFor(t, mono, bidix,
			[2]string{"a", "to"},
			[2]string{"le<det>", "the<det>"},
		)
		got := analyser.Intersect(prefix, mono, bidix)
		assertTransduces(t, got, mono, "au", "a<pr>+le<det>", true)

		strictAlphabet := NewAlphabet()
		strict := prefixFor(t, mono, strictAlphabet, [2]string{"a<pr><x>", "to<pr>"})
		got = analyser.Intersect(strict, mono, strictAlphabet)
		assert.True(t, got.HasNoFinals())
	})
}

func TestIntersectLemqAfterJoin(t *testing.T) {
	mono := NewAlphabet()
	analyser := makeDictionary(t, mono,
		[2]string{"takeitout", "take<vblex>+it<prn># out"},
		[2]string{"takeout", "take<vblex># out"},
		[2]string{"takeitin", "take<vblex>+it<prn># in"},
	)

	bidix := NewAlphabet()
	prefix := prefixFor(t, mono, bidix,
		[2]string{"take# out<vblex>", "sacar<vblex>"},
		[2]string{"it<prn>", "lo<prn>"},
	)

	got := analyser.Intersect(prefix, mono, bidix)
	require.False(t, got.HasNoFinals())
	assertTransduces(t, got, mono, "takeitout", "take<vblex>+it<prn># out", true)
	assertTransduces(t, got, mono, "takeout", "take<vblex># out", true)
	assertTransduces(t, got, mono, "takeitin", "take<vblex>+it<prn># in", false)
}
