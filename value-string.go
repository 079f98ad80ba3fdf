package litval

import (
	"fmt"
	"strings"
	"unicode"
)

// rawContent strips the leading marker and the hash-fenced quote pair from a
// raw literal and returns the inner text verbatim. It trusts the tokenizer to
// have balanced the fences, so the first and last `"` in the text are the
// content boundaries.
func rawContent(s string) (string, error) {
	begin := strings.IndexByte(s, '"')
	end := strings.LastIndexByte(s, '"')
	if begin < 0 || end <= begin {
		return "", fmt.Errorf("raw literal without a quote pair: %w", ErrMalformed)
	}
	return s[begin+1 : end], nil
}

// DecodeString interprets s as a string literal, either quoted (`"..."`) or
// raw (`r"..."`, `r#"..."#`, ...), and returns the decoded text. Raw content
// is returned verbatim with no escape interpretation.
//
// Returns [ErrMismatch] when s does not start like a string literal, and an
// error wrapping [ErrMalformed] when it does but violates the escape grammar.
func DecodeString(s string) (string, error) {
	switch byteAt(s, 0) {
	case '"':
	case 'r':
		return rawContent(s)
	default:
		return "", ErrMismatch
	}

	c := &cursor{s: s, off: 1}
	var out strings.Builder

scan:
	for {
		var ch rune
		switch b := c.peek(); {
		case c.eof():
			return "", fmt.Errorf("unterminated string literal: %w", ErrMalformed)

		case b == '"':
			break scan

		case b == '\\':
			c.bump()
			switch esc := c.bump(); esc {
			case 'x':
				v, err := c.hexByteEscape()
				if err != nil {
					return "", err
				}
				if v > 0x80 {
					return "", fmt.Errorf("invalid \\x%02x byte in string literal: %w", v, ErrMalformed)
				}
				ch = rune(v)
			case 'u':
				r, err := c.unicodeEscape()
				if err != nil {
					return "", err
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
			case '\r', '\n':
				// Line continuation: drop every whitespace character up to
				// the next non-whitespace one, then resume scanning there.
				for unicode.IsSpace(firstRune(c.rest())) {
					c.bumpRune()
				}
				continue scan
			default:
				return "", fmt.Errorf("unexpected byte %q after escape character: %w", esc, ErrMalformed)
			}

		case b == '\r':
			// A bare CR is only valid as part of a CRLF pair, which decodes
			// to a single newline.
			c.bump()
			if c.bump() != '\n' {
				return "", fmt.Errorf("bare CR not allowed in string: %w", ErrMalformed)
			}
			ch = '\n'

		default:
			ch = c.bumpRune()
		}

		out.WriteRune(ch)
	}

	if c.rest() != `"` {
		panic("string scan did not end on the closing quote")
	}
	return out.String(), nil
}

// DecodeBytes interprets s as a byte string literal, either quoted (`b"..."`)
// or raw (`br"..."`, `br#"..."#`, ...), and returns the decoded bytes. Unlike
// text strings, `\x` escapes cover the full 0x00-0xFF range.
func DecodeBytes(s string) ([]byte, error) {
	switch {
	case byteAt(s, 0) == 'b' && byteAt(s, 1) == '"':
	case byteAt(s, 0) == 'b' && byteAt(s, 1) == 'r':
		content, err := rawContent(s)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	default:
		return nil, ErrMismatch
	}

	c := &cursor{s: s, off: 2}
	var out []byte

scan:
	for {
		var b byte
		switch nb := c.peek(); {
		case c.eof():
			return nil, fmt.Errorf("unterminated byte string literal: %w", ErrMalformed)

		case nb == '"':
			break scan

		case nb == '\\':
			c.bump()
			switch esc := c.bump(); esc {
			case 'x':
				v, err := c.hexByteEscape()
				if err != nil {
					return nil, err
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
			case '\r', '\n':
				for byteSpace(c.peek()) {
					c.bump()
				}
				continue scan
			default:
				return nil, fmt.Errorf("unexpected byte %q after escape character: %w", esc, ErrMalformed)
			}

		case nb == '\r':
			c.bump()
			if c.bump() != '\n' {
				return nil, fmt.Errorf("bare CR not allowed in byte string: %w", ErrMalformed)
			}
			b = '\n'

		default:
			b = c.bump()
		}

		out = append(out, b)
	}

	if c.rest() != `"` {
		panic("byte string scan did not end on the closing quote")
	}
	return out, nil
}

// byteSpace reports whether b, read as a Latin-1 character, is whitespace.
func byteSpace(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x85, 0xA0:
		return true
	}
	return false
}
