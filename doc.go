// Package lttoolbox is a small finite-state engine for letter transducers stored in the lttoolbox binary
// format.
//
// A Transducer is a non-deterministic automaton whose labels are symbol pairs of an Alphabet. Symbols are
// characters (their code point), tags such as <n> (negative ids) or the empty symbol 0; label Epsilon is the
// pair 0:0.
//
// The package covers what is needed to trim dictionaries:
//
//	compression.go     the multibyte integer and string encoding
//	alphabet.go        tags and symbol pairs, loopback symbols
//	transducer*.go     states, transitions, binary layout
//	operations.go      emptiness, reverse, determinize, union, dot-star
//	minimization*.go   Brzozowski minimization
//	intersect.go       product of an analyser with a bidix prefix, with "+" joins and "#" lemma queues
//	lemq.go            moving lemma queues behind the tags
//
// Quick example:
//
//	a := lttoolbox.NewAlphabet()
//	t := lttoolbox.NewTransducer()
//	_ = t.InsertEntry(a, "cats", "cat<n><pl>")
//	t.Minimize()
package lttoolbox
