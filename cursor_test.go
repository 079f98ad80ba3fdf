package litval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteAt(t *testing.T) {
	require.Equal(t, byte('a'), byteAt("abc", 0))
	require.Equal(t, byte('c'), byteAt("abc", 2))

	// past the end reads as the zero byte
	require.Equal(t, byte(0), byteAt("abc", 3))
	require.Equal(t, byte(0), byteAt("", 0))
}

func TestFirstRune(t *testing.T) {
	require.Equal(t, 'a', firstRune("abc"))
	require.Equal(t, '🐕', firstRune("🐕x"))
	require.Equal(t, rune(0), firstRune(""))
}

func TestCursor(t *testing.T) {
	c := &cursor{s: "a🐕b"}

	require.Equal(t, byte('a'), c.peek())
	require.Equal(t, byte('a'), c.bump())
	require.Equal(t, '🐕', c.bumpRune())
	require.True(t, c.eat('b'))
	require.True(t, c.eof())

	// bumping past the end stays put and reads zero
	require.Equal(t, byte(0), c.bump())
	require.Equal(t, rune(0), c.bumpRune())
	require.Equal(t, "", c.rest())
}
