package lttoolbox

import (
	"errors"
	"fmt"
	"io"
)

// MaxMultibyte is the largest value the multibyte encoding can carry.
const MaxMultibyte = 0x3FFFFFFF

var ErrOutOfRange = errors.New("lttoolbox: value out of multibyte range")

// WriteMultibyte Writes value using the variable length encoding shared by every lttoolbox binary: the two high
// bits of the first byte hold the number of extra bytes, the remaining bits hold the value big-endian.
func WriteMultibyte(w io.ByteWriter, value int) error {
	if value < 0 || value > MaxMultibyte {
		return fmt.Errorf("%w: %d", ErrOutOfRange, value)
	}

	var buf [4]byte
	var n int
	switch {
	case value < 0x40:
		buf[0] = byte(value)
		n = 1
	case value < 0x4000:
		buf[0] = byte(value>>8) | 0x40
		buf[1] = byte(value)
		n = 2
	case value < 0x400000:
		buf[0] = byte(value>>16) | 0x80
		buf[1] = byte(value >> 8)
		buf[2] = byte(value)
		n = 3
	default:
		buf[0] = byte(value>>24) | 0xC0
		buf[1] = byte(value >> 16)
		buf[2] = byte(value >> 8)
		buf[3] = byte(value)
		n = 4
	}

	for i := 0; i < n; i++ {
		if err := w.WriteByte(buf[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadMultibyte Reads a value written by WriteMultibyte. A stream that ends inside a value reports
// io.ErrUnexpectedEOF; a stream that ends before the first byte reports io.EOF.
func ReadMultibyte(r io.ByteReader) (int, error) {
	up, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	extra := int(up >> 6)
	value := int(up & 0x3F)
	for i := 0; i < extra; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		value = value<<8 | int(b)
	}
	return value, nil
}

// WriteString Writes the number of code points followed by each code point.
func WriteString(w io.ByteWriter, s string) error {
	return WriteRunes(w, []rune(s))
}

// WriteRunes Same as WriteString for an explicit code point sequence.
func WriteRunes(w io.ByteWriter, runes []rune) error {
	if err := WriteMultibyte(w, len(runes)); err != nil {
		return err
	}
	for _, r := range runes {
		if err := WriteMultibyte(w, int(r)); err != nil {
			return err
		}
	}
	return nil
}

// ReadRunes Reads a sequence written by WriteRunes. Any end of stream is reported as io.ErrUnexpectedEOF,
// except an end of stream before the length.
func ReadRunes(r io.ByteReader) ([]rune, error) {
	size, err := ReadMultibyte(r)
	if err != nil {
		return nil, err
	}

	runes := make([]rune, 0, min(size, 1024))
	for i := 0; i < size; i++ {
		c, err := ReadMultibyte(r)
		if err != nil {
			return nil, unexpected(err)
		}
		runes = append(runes, rune(c))
	}
	return runes, nil
}

// ReadString Reads a sequence written by WriteString.
func ReadString(r io.ByteReader) (string, error) {
	runes, err := ReadRunes(r)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// unexpected turns a clean end of stream into a truncation error. Use it once a record has started.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
