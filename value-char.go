package litval

import "fmt"

// DecodeChar interprets s as a char literal (`'...'`) holding exactly one
// character or escape, and returns the decoded unicode scalar.
func DecodeChar(s string) (rune, error) {
	if byteAt(s, 0) != '\'' {
		return 0, ErrMismatch
	}

	c := &cursor{s: s, off: 1}
	var ch rune
	if c.peek() == '\\' {
		c.bump()
		switch esc := c.bump(); esc {
		case 'x':
			v, err := c.hexByteEscape()
			if err != nil {
				return 0, err
			}
			if v > 0x80 {
				return 0, fmt.Errorf("invalid \\x%02x byte in char literal: %w", v, ErrMalformed)
			}
			ch = rune(v)
		case 'u':
			r, err := c.unicodeEscape()
			if err != nil {
				return 0, err
			}
			ch = r
		case 'n':
			ch = '\n'
		case 'r':
			ch = '\r'
		case 't':
			ch = '\t'
		case '\\':
			ch = '\\'
		case '0':
			ch = 0
		case '\'':
			ch = '\''
		case '"':
			ch = '"'
		default:
			return 0, fmt.Errorf("unexpected byte %q after escape character: %w", esc, ErrMalformed)
		}
	} else {
		ch = c.bumpRune()
	}

	if c.rest() != "'" {
		return 0, fmt.Errorf("expected end of char literal: %w", ErrMalformed)
	}
	return ch, nil
}

// DecodeByte interprets s as a byte literal (`b'...'`) and returns the
// decoded byte. The escape table is the byte string one: `\x` covers the full
// byte range and `\u` is not available.
func DecodeByte(s string) (byte, error) {
	if byteAt(s, 0) != 'b' || byteAt(s, 1) != '\'' {
		return 0, ErrMismatch
	}

	c := &cursor{s: s, off: 2}
	var b byte
	if c.peek() == '\\' {
		c.bump()
		switch esc := c.bump(); esc {
		case 'x':
			v, err := c.hexByteEscape()
			if err != nil {
				return 0, err
			}
			b = v
		case 'n':
			b = '\n'
		case 'r':
			b = '\r'
		case 't':
			b = '\t'
		case '\\':
			b = '\\'
		case '0':
			b = 0
		case '\'':
			b = '\''
		case '"':
			b = '"'
		default:
			return 0, fmt.Errorf("unexpected byte %q after escape character: %w", esc, ErrMalformed)
		}
	} else {
		b = c.bump()
	}

	if c.peek() != '\'' {
		return 0, fmt.Errorf("expected end of byte literal: %w", ErrMalformed)
	}
	return b, nil
}
