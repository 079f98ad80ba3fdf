package litval

import (
	"fmt"
	"math/bits"
	"reflect"
	"strconv"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Int is a decoded integer literal: the accumulated magnitude plus the type
// suffix written on the literal, if any. The magnitude is absent when the
// digits overflowed the decoder's integer width; the suffix survives
// overflow.
type Int struct {
	hi, lo   uint64
	overflow bool
	suffix   string
}

// Suffix returns the type suffix written on the literal, or "" when there
// was none.
func (l Int) Suffix() string {
	return l.suffix
}

// Value returns the literal's magnitude. ok is false when the digits
// overflowed during decoding or the magnitude does not fit in 64 bits.
func (l Int) Value() (v uint64, ok bool) {
	if l.overflow || l.hi != 0 {
		return 0, false
	}
	return l.lo, true
}

// Value128 returns the magnitude as a 128 bit hi/lo pair. Only a decoder
// with extended widths enabled ever populates hi. ok is false when even 128
// bits overflowed.
func (l Int) Value128() (hi, lo uint64, ok bool) {
	if l.overflow {
		return 0, 0, false
	}
	return l.hi, l.lo, true
}

// IntValue extracts the literal's value as T. It returns an error wrapping
// [ErrMismatch] when the literal carries a suffix for a different type, and
// an error wrapping [strconv.ErrRange] when the magnitude overflowed during
// decoding or does not fit in T.
//
// Go's int and uint correspond to the isize and usize suffixes.
func IntValue[T constraints.Integer](l Int) (T, error) {
	want, ok := intSuffixFor(reflect.TypeFor[T]().Kind())
	if !ok {
		return 0, fmt.Errorf("no integer suffix corresponds to %T", T(0))
	}
	if l.suffix != "" && l.suffix != want {
		return 0, fmt.Errorf("literal suffix is %q, not %q: %w", l.suffix, want, ErrMismatch)
	}

	v, ok := l.Value()
	if !ok {
		return 0, fmt.Errorf("integer literal magnitude overflows: %w", strconv.ErrRange)
	}

	n, err := safecast.Conv[T](v)
	if err != nil {
		return 0, fmt.Errorf("value %d does not fit %s: %w", v, want, strconv.ErrRange)
	}
	return n, nil
}

func intSuffixFor(kind reflect.Kind) (string, bool) {
	switch kind {
	case reflect.Uint8:
		return "u8", true
	case reflect.Int8:
		return "i8", true
	case reflect.Uint16:
		return "u16", true
	case reflect.Int16:
		return "i16", true
	case reflect.Uint32:
		return "u32", true
	case reflect.Int32:
		return "i32", true
	case reflect.Uint64:
		return "u64", true
	case reflect.Int64:
		return "i64", true
	case reflect.Uint:
		return "usize", true
	case reflect.Int:
		return "isize", true
	}
	return "", false
}

// DecodeInt interprets s as an integer literal using the default decoder.
// See [Decoder.DecodeInt].
func DecodeInt(s string) (Int, error) {
	return dec.DecodeInt(s)
}

// DecodeInt interprets s as an integer literal: an optional base prefix
// (`0x`, `0o`, `0b`), digits with underscore separators, and an optional
// type suffix.
//
// Returns [ErrMismatch] when s does not start with a digit, carries an
// unknown suffix, or turns out to be a float literal (decimal digits
// followed by `.` or an exponent). Digits that overflow the decoder's
// integer width leave the magnitude absent without failing the decode.
func (d *Decoder) DecodeInt(s string) (Int, error) {
	c := &cursor{s: s}
	var base uint64
	switch {
	case byteAt(s, 0) == '0' && byteAt(s, 1) == 'x':
		c.off = 2
		base = 16
	case byteAt(s, 0) == '0' && byteAt(s, 1) == 'o':
		c.off = 2
		base = 8
	case byteAt(s, 0) == '0' && byteAt(s, 1) == 'b':
		c.off = 2
		base = 2
	case isDecimal(byteAt(s, 0)):
		base = 10
	default:
		return Int{}, ErrMismatch
	}

	var lit Int
scan:
	for {
		b := c.peek()
		var digit uint64
		switch {
		case b >= '0' && b <= '9':
			digit = uint64(b - '0')
		case base > 10 && b >= 'a' && b <= 'f':
			digit = uint64(10 + b - 'a')
		case base > 10 && b >= 'A' && b <= 'F':
			digit = uint64(10 + b - 'A')
		case b == '_':
			// Separator, contributes nothing.
			c.bump()
			continue
		case base == 10 && (b == '.' || b == 'e' || b == 'E'):
			// Decimal digits followed by a dot or exponent are really a
			// float literal.
			return Int{}, ErrMismatch
		default:
			break scan
		}

		if digit >= base {
			panic(fmt.Sprintf("digit %x out of range for base %d", digit, base))
		}

		if !lit.overflow {
			lit.hi, lit.lo, lit.overflow = mulAdd(lit.hi, lit.lo, base, digit, d.extendedWidths)
		}
		c.bump()
	}

	suffix := c.rest()
	if !d.validIntSuffix(suffix) {
		return Int{}, fmt.Errorf("unknown integer suffix %q: %w", suffix, ErrMismatch)
	}
	lit.suffix = suffix
	return lit, nil
}

func (d *Decoder) validIntSuffix(s string) bool {
	switch s {
	case "", "u8", "i8", "u16", "i16", "u32", "i32", "u64", "i64", "usize", "isize":
		return true
	case "u128", "i128":
		return d.extendedWidths
	}
	return false
}

// mulAdd computes value*base + digit over a 128 bit accumulator, reporting
// overflow past the enabled width. Once a literal overflows it stays
// overflowed; callers keep consuming digits so the suffix still parses.
func mulAdd(hi, lo, base, digit uint64, wide bool) (uint64, uint64, bool) {
	hh, hl := bits.Mul64(hi, base)
	lh, ll := bits.Mul64(lo, base)
	newLo, carry := bits.Add64(ll, digit, 0)
	newHi, carry2 := bits.Add64(hl, lh, carry)
	if hh != 0 || carry2 != 0 {
		return 0, 0, true
	}
	if !wide && newHi != 0 {
		return 0, 0, true
	}
	return newHi, newLo, false
}

func isDecimal(b byte) bool {
	return b >= '0' && b <= '9'
}
