package litval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeChar(t *testing.T) {
	cases := []struct {
		text string
		want rune
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\r'`, '\r'},
		{`'\t'`, '\t'},
		{`'\\'`, '\\'},
		{`'\0'`, 0},
		{`'\''`, '\''},
		{`'\"'`, '"'},
		{`'"'`, '"'},
		{`'🐕'`, '🐕'},
		{`'\u{1F415}'`, '\U0001F415'},
		{`'\x41'`, 'A'},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := DecodeChar(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeCharMismatch(t *testing.T) {
	for _, text := range []string{"", "5", `"a"`, "b'a'", "a"} {
		_, err := DecodeChar(text)
		require.ErrorIs(t, err, ErrMismatch, "text %q", text)
	}
}

func TestDecodeCharMalformed(t *testing.T) {
	texts := []string{
		`'ab'`,       // more than one character
		`''`,         // no character at all
		`'\q'`,       // unknown escape
		`'\x90'`,     // \x above 0x80 is only valid on bytes
		`'\u{D800}'`, // surrogate
		`'a`,         // unterminated
	}

	for _, text := range texts {
		_, err := DecodeChar(text)
		require.ErrorIs(t, err, ErrMalformed, "text %q", text)
	}
}

func TestDecodeByte(t *testing.T) {
	cases := []struct {
		text string
		want byte
	}{
		{`b'a'`, 'a'},
		{`b'\n'`, '\n'},
		{`b'\r'`, '\r'},
		{`b'\t'`, '\t'},
		{`b'\\'`, '\\'},
		{`b'\0'`, 0},
		{`b'\''`, '\''},
		{`b'\"'`, '"'},
		{`b'"'`, '"'},
		{`b'\xFF'`, 0xFF},
		{`b'\x00'`, 0x00},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := DecodeByte(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeByteMismatch(t *testing.T) {
	for _, text := range []string{"", "5", "'a'", `b"a"`, "a"} {
		_, err := DecodeByte(text)
		require.ErrorIs(t, err, ErrMismatch, "text %q", text)
	}
}

func TestDecodeByteMalformed(t *testing.T) {
	texts := []string{
		`b'ab'`,     // more than one byte
		`b'\q'`,     // unknown escape
		`b'\u{41}'`, // \u is not available on bytes
		`b'a`,       // unterminated
	}

	for _, text := range texts {
		_, err := DecodeByte(text)
		require.ErrorIs(t, err, ErrMalformed, "text %q", text)
	}
}
