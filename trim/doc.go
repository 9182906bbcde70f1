// Package trim cuts an analyser down to the analyses a bidix can translate.
//
// The bidix sections are joined into one prefix automaton that accepts every bidix input followed by any
// run of the analyser's tags. Each analyser section is intersected with that prefix; sections that end up
// without a final state are cleared and reported.
//
// The pipeline only talks to transducers through Automaton, so any implementation of it (the lttoolbox
// engine, or a stub in tests) can be trimmed.
package trim
