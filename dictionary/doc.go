// Package dictionary reads and writes compiled lttoolbox dictionaries.
//
// A compiled dictionary is laid out as:
//
//	letters   string of the characters that may start a token
//	alphabet  tags and symbol pairs, see lttoolbox.Alphabet
//	count     number of sections
//	sections  count times: name string, then the transducer
//
// Every integer is an lttoolbox multibyte value and every string is a multibyte length followed by one
// multibyte code point per character. Sections are kept sorted by name.
package dictionary
