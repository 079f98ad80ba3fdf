package litval

import "unicode/utf8"

// byteAt returns the byte at offset idx, or 0 when idx is past the end of s.
// The zero sentinel lets the scanners branch uniformly instead of bounds
// checking at every step.
func byteAt(s string, idx int) byte {
	if idx < len(s) {
		return s[idx]
	}
	return 0
}

// firstRune returns the first unicode scalar of s, or NUL when s is empty.
func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// cursor is a view over literal text. Advancing it narrows the view; the
// underlying text is never mutated.
type cursor struct {
	s   string
	off int
}

func (c *cursor) eof() bool {
	return c.off >= len(c.s)
}

// peek returns the current byte, or 0 at the end of input.
func (c *cursor) peek() byte {
	return byteAt(c.s, c.off)
}

// peekAt returns the byte n positions past the current one, or 0 at the end.
func (c *cursor) peekAt(n int) byte {
	return byteAt(c.s, c.off+n)
}

// bump advances the cursor one byte and returns the byte read, or 0 at the
// end of input.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.s[c.off]
	c.off++
	return b
}

// bumpRune advances the cursor one unicode scalar and returns it, or NUL at
// the end of input.
func (c *cursor) bumpRune() rune {
	if c.eof() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(c.s[c.off:])
	c.off += size
	return r
}

// eat consumes the next byte if it matches b.
func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.s[c.off] == b {
		c.off++
		return true
	}
	return false
}

// rest returns the unconsumed tail of the input.
func (c *cursor) rest() string {
	return c.s[c.off:]
}
