package litval

import (
	"fmt"
	"unicode/utf8"
)

// hexDigit returns the value of a hexadecimal digit byte.
func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return 10 + b - 'a', true
	case b >= 'A' && b <= 'F':
		return 10 + b - 'A', true
	}
	return 0, false
}

// hexByteEscape decodes the two hex digits of a `\xNN` escape. The cursor
// must be positioned just past the `\x`.
func (c *cursor) hexByteEscape() (byte, error) {
	hi, ok := hexDigit(c.peek())
	if !ok {
		return 0, fmt.Errorf("unexpected byte %q after \\x: %w", c.peek(), ErrMalformed)
	}
	lo, ok := hexDigit(c.peekAt(1))
	if !ok {
		return 0, fmt.Errorf("unexpected byte %q after \\x: %w", c.peekAt(1), ErrMalformed)
	}
	c.off += 2
	return hi<<4 | lo, nil
}

// unicodeEscape decodes a `\u{...}` escape of up to six hex digits. The
// cursor must be positioned just past the `\u`.
func (c *cursor) unicodeEscape() (rune, error) {
	if !c.eat('{') {
		return 0, fmt.Errorf("expected { after \\u: %w", ErrMalformed)
	}

	var ch rune
	for range 6 {
		if d, ok := hexDigit(c.peek()); ok {
			ch = ch*0x10 + rune(d)
			c.bump()
			continue
		}
		if c.peek() == '}' {
			break
		}
		return 0, fmt.Errorf("unexpected byte %q after \\u: %w", c.peek(), ErrMalformed)
	}
	if !c.eat('}') {
		return 0, fmt.Errorf("expected } to close \\u escape: %w", ErrMalformed)
	}

	if !utf8.ValidRune(ch) {
		return 0, fmt.Errorf("character code %x is not a valid unicode scalar: %w", ch, ErrMalformed)
	}
	return ch, nil
}
