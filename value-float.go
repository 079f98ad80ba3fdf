package litval

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Float is a decoded floating point literal: its value and the type suffix
// written on the literal, if any. Floats have no overflow concept; the value
// is always present.
type Float struct {
	val    float64
	suffix string
}

// Suffix returns the type suffix written on the literal, or "" when there
// was none.
func (l Float) Suffix() string {
	return l.suffix
}

// Value returns the literal's value.
func (l Float) Value() float64 {
	return l.val
}

// FloatValue extracts the literal's value as T. It returns an error wrapping
// [ErrMismatch] when the literal carries a suffix for a different float
// width.
func FloatValue[T constraints.Float](l Float) (T, error) {
	var want string
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		want = "f32"
	case reflect.Float64:
		want = "f64"
	}
	if l.suffix != "" && l.suffix != want {
		return 0, fmt.Errorf("literal suffix is %q, not %q: %w", l.suffix, want, ErrMismatch)
	}
	return T(l.val), nil
}

// DecodeFloat interprets s as a floating point literal: decimal digits with
// underscore separators, at most one dot, an optional signed exponent, and
// an optional f32/f64 suffix.
//
// Returns [ErrMismatch] when s does not look like a float at all (base
// prefixes are never floats), carries an unknown suffix, or is an integer in
// disguise (no dot, no exponent, no suffix). The numeric text is converted
// with the platform's decimal-to-double parser.
func DecodeFloat(s string) (Float, error) {
	switch {
	case byteAt(s, 0) == '0' && (byteAt(s, 1) == 'x' || byteAt(s, 1) == 'o' || byteAt(s, 1) == 'b'):
		return Float{}, ErrMismatch
	case isDecimal(byteAt(s, 0)):
	default:
		return Float{}, ErrMismatch
	}

	// Underscores are purely visual separators; drop them before scanning.
	s = strings.ReplaceAll(s, "_", "")

	c := &cursor{s: s}
	var hasDot, hasExp bool

scan:
	for {
		switch b := c.peek(); {
		case isDecimal(b):
			c.bump()

		case b == '.':
			c.bump()
			if hasDot {
				return Float{}, fmt.Errorf("second dot in float literal: %w", ErrMalformed)
			}
			hasDot = true

		case b == 'e' || b == 'E':
			c.bump()
		exponent:
			for {
				switch eb := c.peek(); {
				case (eb == '+' || eb == '-') && !hasExp:
					c.bump()
				case isDecimal(eb):
					c.bump()
					hasExp = true
				default:
					break exponent
				}
			}
			if !hasExp {
				return Float{}, fmt.Errorf("exponent without digits: %w", ErrMalformed)
			}
			break scan

		default:
			break scan
		}
	}

	suffix := c.rest()
	switch suffix {
	case "", "f32", "f64":
	default:
		return Float{}, fmt.Errorf("unknown float suffix %q: %w", suffix, ErrMismatch)
	}

	// Without a dot, an exponent or a suffix this is an integer literal, not
	// a float.
	if !hasDot && !hasExp && suffix == "" {
		return Float{}, ErrMismatch
	}

	val, err := strconv.ParseFloat(s[:len(s)-len(suffix)], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// ErrRange still yields the clamped infinity, which matches the
		// usual reading of an oversized decimal literal.
		return Float{}, errors.Join(fmt.Errorf("parse float %q: %w", s, err), ErrMalformed)
	}
	return Float{val: val, suffix: suffix}, nil
}
