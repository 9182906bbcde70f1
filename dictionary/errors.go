package dictionary

import (
	"errors"
)

// ErrDuplicateSection indicates that two sections of one dictionary carry the same name.
// Usage: if errors.Is(err, ErrDuplicateSection) { /* reject the file */ }.
var ErrDuplicateSection = errors.New("dictionary: duplicate section")

// ErrInvalidName indicates that a section name holds a value that is not a Unicode code point.
var ErrInvalidName = errors.New("dictionary: invalid section name")
