package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports a colour string that is not six hex digits with an
// optional leading '#'.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid colour %q: %s", e.Input, e.Reason)
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB and RRGGBB, in either case.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) != 6 {
		return RGB{}, &ValidationError{
			Input:  s,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d characters", len(hex)),
		}
	}

	// Locate the first offending digit for the error message.
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return RGB{}, &ValidationError{
				Input:  s,
				Reason: fmt.Sprintf("non-hex character %q at position %d", hex[i], i),
			}
		}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, &ValidationError{Input: s, Reason: err.Error()}
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level palette tables.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}
