package dictionary

import (
	"fmt"
	"sort"

	"github.com/geange/lttoolbox"
)

// Section A named transducer of a dictionary.
type Section[T any] struct {
	Name       string
	Transducer T
}

// Dictionary Letters, alphabet and sections of one compiled dictionary. Sections are ordered by name and
// names are unique; use Add to keep it that way.
type Dictionary[T any] struct {
	Letters  []rune
	Alphabet *lttoolbox.Alphabet
	Sections []Section[T]
}

func New[T any](letters []rune, alphabet *lttoolbox.Alphabet) *Dictionary[T] {
	if alphabet == nil {
		alphabet = lttoolbox.NewAlphabet()
	}
	return &Dictionary[T]{Letters: letters, Alphabet: alphabet}
}

func (d *Dictionary[T]) search(name string) int {
	return sort.Search(len(d.Sections), func(i int) bool {
		return d.Sections[i].Name >= name
	})
}

// Add Inserts a section at its place in name order.
func (d *Dictionary[T]) Add(name string, t T) error {
	i := d.search(name)
	if i < len(d.Sections) && d.Sections[i].Name == name {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
	}
	d.Sections = append(d.Sections, Section[T]{})
	copy(d.Sections[i+1:], d.Sections[i:])
	d.Sections[i] = Section[T]{Name: name, Transducer: t}
	return nil
}

// Section Returns the transducer of the named section.
func (d *Dictionary[T]) Section(name string) (T, bool) {
	i := d.search(name)
	if i < len(d.Sections) && d.Sections[i].Name == name {
		return d.Sections[i].Transducer, true
	}
	var zero T
	return zero, false
}

// Names Returns the section names in order.
func (d *Dictionary[T]) Names() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}
