package lttoolbox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrMalformedAlphabet = errors.New("lttoolbox: malformed alphabet")
	ErrMalformedSymbol   = errors.New("lttoolbox: malformed symbol")
)

// Side Selects one half of a symbol pair.
type Side int

const (
	Left Side = iota
	Right
)

// Epsilon is the label of the pair 0:0. Every alphabet registers it first.
const Epsilon = 0

// Pair A transition label: input symbol and output symbol. Characters are their code point, tags are
// negative, 0 is the empty symbol.
type Pair struct {
	Left  int
	Right int
}

// Side Returns the symbol on the given side.
func (p Pair) Side(s Side) int {
	if s == Left {
		return p.Left
	}
	return p.Right
}

// Alphabet Maps multi-character tags to symbol ids and symbol pairs to transition labels. Tag i (in order of
// inclusion) has id -(i+1).
type Alphabet struct {
	tags    []string // with angle brackets
	tagIDs  map[string]int
	pairs   []Pair
	pairIDs map[Pair]int
}

func NewAlphabet() *Alphabet {
	a := &Alphabet{
		tagIDs:  make(map[string]int),
		pairIDs: make(map[Pair]int),
	}
	a.Pair(0, 0)
	return a
}

// IncludeSymbol Registers the tag (written with angle brackets) if it is not known yet.
func (a *Alphabet) IncludeSymbol(tag string) int {
	if id, ok := a.tagIDs[tag]; ok {
		return id
	}
	a.tags = append(a.tags, tag)
	id := -len(a.tags)
	a.tagIDs[tag] = id
	return id
}

// Symbol Returns the id for a tag or a single character.
func (a *Alphabet) Symbol(text string) (int, bool) {
	if id, ok := a.tagIDs[text]; ok {
		return id, true
	}
	if r, size := utf8.DecodeRuneInString(text); size > 0 && size == len(text) && r != utf8.RuneError {
		return int(r), true
	}
	return 0, false
}

// Pair Returns the label of left:right, creating it when needed.
func (a *Alphabet) Pair(left, right int) int {
	p := Pair{Left: left, Right: right}
	if label, ok := a.pairIDs[p]; ok {
		return label
	}
	label := len(a.pairs)
	a.pairs = append(a.pairs, p)
	a.pairIDs[p] = label
	return label
}

// LookupPair Returns the label of left:right without creating it.
func (a *Alphabet) LookupPair(left, right int) (int, bool) {
	label, ok := a.pairIDs[Pair{Left: left, Right: right}]
	return label, ok
}

// Decode Returns the pair behind a label. The label must exist.
func (a *Alphabet) Decode(label int) Pair {
	return a.pairs[label]
}

// HasLabel Reports whether label is a known pair.
func (a *Alphabet) HasLabel(label int) bool {
	return label >= 0 && label < len(a.pairs)
}

// SymbolText Returns the written form of a symbol: the tag with brackets, the character, or "" for 0.
func (a *Alphabet) SymbolText(symbol int) string {
	switch {
	case symbol == 0:
		return ""
	case symbol < 0:
		idx := -symbol - 1
		if idx < len(a.tags) {
			return a.tags[idx]
		}
		return ""
	default:
		return string(rune(symbol))
	}
}

// LabelText Returns the written form of one side of a label.
func (a *Alphabet) LabelText(label int, s Side) string {
	return a.SymbolText(a.pairs[label].Side(s))
}

func (a *Alphabet) IsTag(symbol int) bool {
	return symbol < 0
}

func (a *Alphabet) PairCount() int {
	return len(a.pairs)
}

func (a *Alphabet) TagCount() int {
	return len(a.tags)
}

// Tokenize Splits s into symbols: every "<...>" is a tag (registered if unknown), every other character stands
// for itself. A backslash makes the next character literal.
func (a *Alphabet) Tokenize(s string) ([]int, error) {
	symbols := make([]int, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\\':
			if i+size >= len(s) {
				return nil, fmt.Errorf("%w: trailing escape in %q", ErrMalformedSymbol, s)
			}
			next, nextSize := utf8.DecodeRuneInString(s[i+size:])
			symbols = append(symbols, int(next))
			i += size + nextSize
		case '<':
			end := strings.IndexByte(s[i:], '>')
			if end < 2 {
				return nil, fmt.Errorf("%w: unterminated tag in %q", ErrMalformedSymbol, s)
			}
			symbols = append(symbols, a.IncludeSymbol(s[i:i+end+1]))
			i += end + 1
		default:
			if r == utf8.RuneError && size <= 1 {
				return nil, fmt.Errorf("%w: invalid utf-8 in %q", ErrMalformedSymbol, s)
			}
			symbols = append(symbols, int(r))
			i += size
		}
	}
	return symbols, nil
}

// CreateLoopbackSymbols For every pair of basis, takes the symbol on side s; each tag found this way is
// included here and the label of its identity pair (tag:tag, in this alphabet) is added to symbols.
func (a *Alphabet) CreateLoopbackSymbols(symbols *bitset.BitSet, basis *Alphabet, s Side) {
	for _, p := range basis.pairs {
		symbol := p.Side(s)
		if !basis.IsTag(symbol) {
			continue
		}
		id := a.IncludeSymbol(basis.SymbolText(symbol))
		symbols.Set(uint(a.Pair(id, id)))
	}
}

// Write Writes the tag list (without brackets) and then the pair list; pair symbols are biased by the number
// of tags so that they are never negative.
func (a *Alphabet) Write(w io.ByteWriter) error {
	if err := WriteMultibyte(w, len(a.tags)); err != nil {
		return err
	}
	for _, tag := range a.tags {
		if len(tag) < 2 || !strings.HasPrefix(tag, "<") || !strings.HasSuffix(tag, ">") {
			return fmt.Errorf("%w: tag %q has no angle brackets", ErrMalformedSymbol, tag)
		}
		if err := WriteString(w, tag[1:len(tag)-1]); err != nil {
			return err
		}
	}

	bias := len(a.tags)
	if err := WriteMultibyte(w, len(a.pairs)); err != nil {
		return err
	}
	for _, p := range a.pairs {
		if err := WriteMultibyte(w, p.Left+bias); err != nil {
			return err
		}
		if err := WriteMultibyte(w, p.Right+bias); err != nil {
			return err
		}
	}
	return nil
}

// Read Replaces the content of the alphabet with the one read from r.
func (a *Alphabet) Read(r io.ByteReader) error {
	tagCount, err := ReadMultibyte(r)
	if err != nil {
		return err
	}

	tags := make([]string, 0, min(tagCount, 1024))
	tagIDs := make(map[string]int, min(tagCount, 1024))
	for i := 0; i < tagCount; i++ {
		name, err := ReadString(r)
		if err != nil {
			return unexpected(err)
		}
		tag := "<" + name + ">"
		if _, ok := tagIDs[tag]; ok {
			return fmt.Errorf("%w: duplicate tag %s", ErrMalformedAlphabet, tag)
		}
		tags = append(tags, tag)
		tagIDs[tag] = -len(tags)
	}

	pairCount, err := ReadMultibyte(r)
	if err != nil {
		return unexpected(err)
	}

	bias := tagCount
	pairs := make([]Pair, 0, min(pairCount, 1024))
	pairIDs := make(map[Pair]int, min(pairCount, 1024))
	for i := 0; i < pairCount; i++ {
		left, err := ReadMultibyte(r)
		if err != nil {
			return unexpected(err)
		}
		right, err := ReadMultibyte(r)
		if err != nil {
			return unexpected(err)
		}
		p := Pair{Left: left - bias, Right: right - bias}
		if _, ok := pairIDs[p]; ok {
			return fmt.Errorf("%w: duplicate pair %d", ErrMalformedAlphabet, i)
		}
		pairIDs[p] = len(pairs)
		pairs = append(pairs, p)
	}

	if len(pairs) > 0 && pairs[Epsilon] != (Pair{}) {
		return fmt.Errorf("%w: label %d is not 0:0", ErrMalformedAlphabet, Epsilon)
	}

	a.tags, a.tagIDs = tags, tagIDs
	a.pairs, a.pairIDs = pairs, pairIDs
	return nil
}
