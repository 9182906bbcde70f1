package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/geange/lttoolbox"
)

// Read Reads a whole compiled dictionary. A stream that ends early reports io.ErrUnexpectedEOF; a label that
// the alphabet does not define reports lttoolbox.ErrUnknownLabel. Nothing is returned on error.
func Read(r io.Reader) (*Dictionary[*lttoolbox.Transducer], error) {
	br := bufio.NewReader(r)

	letters, err := lttoolbox.ReadRunes(br)
	if err != nil {
		return nil, fmt.Errorf("dictionary: letters: %w", unexpected(err))
	}

	alphabet := lttoolbox.NewAlphabet()
	if err := alphabet.Read(br); err != nil {
		return nil, fmt.Errorf("dictionary: alphabet: %w", unexpected(err))
	}

	count, err := lttoolbox.ReadMultibyte(br)
	if err != nil {
		return nil, fmt.Errorf("dictionary: section count: %w", unexpected(err))
	}

	d := New[*lttoolbox.Transducer](letters, alphabet)
	for i := 0; i < count; i++ {
		name, err := readName(br)
		if err != nil {
			return nil, fmt.Errorf("dictionary: section %d: %w", i, err)
		}

		t := lttoolbox.NewTransducer()
		if err := t.Read(br); err != nil {
			return nil, fmt.Errorf("dictionary: section %q: %w", name, unexpected(err))
		}
		if err := t.CheckLabels(alphabet); err != nil {
			return nil, fmt.Errorf("dictionary: section %q: %w", name, err)
		}
		if err := d.Add(name, t); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func readName(r io.ByteReader) (string, error) {
	runes, err := lttoolbox.ReadRunes(r)
	if err != nil {
		return "", unexpected(err)
	}
	for _, c := range runes {
		if !utf8.ValidRune(c) {
			return "", fmt.Errorf("%w: code point %#x", ErrInvalidName, c)
		}
	}
	return string(runes), nil
}

// Write Writes letters, alphabet and the sections whose transducer is not empty. The section count is taken
// from the sections actually written.
func Write(w io.Writer, d *Dictionary[*lttoolbox.Transducer]) error {
	bw := bufio.NewWriter(w)

	if err := lttoolbox.WriteRunes(bw, d.Letters); err != nil {
		return fmt.Errorf("dictionary: letters: %w", err)
	}
	if err := d.Alphabet.Write(bw); err != nil {
		return fmt.Errorf("dictionary: alphabet: %w", err)
	}

	live := make([]Section[*lttoolbox.Transducer], 0, len(d.Sections))
	for _, s := range d.Sections {
		if !s.Transducer.IsEmpty() {
			live = append(live, s)
		}
	}
	if err := lttoolbox.WriteMultibyte(bw, len(live)); err != nil {
		return fmt.Errorf("dictionary: section count: %w", err)
	}
	for _, s := range live {
		if err := lttoolbox.WriteString(bw, s.Name); err != nil {
			return fmt.Errorf("dictionary: section %q: %w", s.Name, err)
		}
		if err := s.Transducer.Write(bw); err != nil {
			return fmt.Errorf("dictionary: section %q: %w", s.Name, err)
		}
	}
	return bw.Flush()
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
