package marquee

import (
	"errors"
	"strings"
)

const (
	// DefaultMinChars is the minimum stream length used by PadDefault.
	DefaultMinChars = 180
	// BandMinChars is the minimum stream length a Band pads its text to.
	BandMinChars = 200
)

// ErrEmptyText reports text that trims down to nothing and therefore cannot
// be repeated into a stream.
var ErrEmptyText = errors.New("marquee: text is empty")

// Pad trims s and appends " "+base until the result is at least min bytes
// long. The last repetition may overshoot min; the result is never truncated.
// When the trimmed text is empty Pad returns "" without looping.
func Pad(s string, min int) string {
	base := strings.TrimSpace(s)
	if base == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(base)
	for b.Len() < min {
		b.WriteByte(' ')
		b.WriteString(base)
	}
	return b.String()
}

// PadDefault pads s to DefaultMinChars.
func PadDefault(s string) string {
	return Pad(s, DefaultMinChars)
}

// Validate returns ErrEmptyText when s is empty or whitespace only.
func Validate(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyText
	}
	return nil
}

// Repetitions reports how many copies of the trimmed text Pad(s, min) holds.
func Repetitions(s string, min int) int {
	base := strings.TrimSpace(s)
	if base == "" {
		return 0
	}
	count, size := 1, len(base)
	for size < min {
		size += len(base) + 1
		count++
	}
	return count
}
