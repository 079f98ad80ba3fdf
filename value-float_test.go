package litval

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFloat(t *testing.T) {
	cases := []struct {
		text   string
		value  float64
		suffix string
	}{
		{"5.5", 5.5, ""},
		{"5.5E32", 5.5e32, ""},
		{"5.5e32", 5.5e32, ""},
		{"1.0__3e-23", 1.03e-23, ""},
		{"1.03e+23", 1.03e23, ""},
		{"5.", 5, ""},
		{"5e3", 5000, ""},
		{"5f32", 5, "f32"},
		{"2.5f64", 2.5, "f64"},
		{"2.5f32", 2.5, "f32"},
		{"1_000.000_1", 1000.0001, ""},
		{"9e9_9", 9e99, ""},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			lit, err := DecodeFloat(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.value, lit.Value())
			require.Equal(t, tc.suffix, lit.Suffix())
		})
	}
}

func TestDecodeFloatMatchesParseFloat(t *testing.T) {
	// underscore stripping must not change the converted value
	for literal, plain := range map[string]string{
		"1.03e+23":  "1.03e23",
		"1.0_3e-23": "1.03e-23",
	} {
		lit, err := DecodeFloat(literal)
		require.NoError(t, err)

		want, err := strconv.ParseFloat(plain, 64)
		require.NoError(t, err)
		require.Equal(t, want, lit.Value())
	}
}

func TestDecodeFloatMismatch(t *testing.T) {
	texts := []string{
		"", "abc", "-5.5", `"5.5"`, "'5'",

		// base prefixed literals are never floats
		"0x1", "0o7", "0b1", "0xAB",

		// integers in disguise defer to DecodeInt
		"5", "5_0", "1234",

		// unknown suffixes
		"5.5furlong", "5.5f16", "5.5u32",
	}

	for _, text := range texts {
		_, err := DecodeFloat(text)
		require.ErrorIs(t, err, ErrMismatch, "text %q", text)
	}
}

func TestDecodeFloatMalformed(t *testing.T) {
	for _, text := range []string{"1.2.3", "1e", "1e+", "5.5e"} {
		_, err := DecodeFloat(text)
		require.ErrorIs(t, err, ErrMalformed, "text %q", text)
	}
}

func TestFloatValue(t *testing.T) {
	lit, err := DecodeFloat("2.5f64")
	require.NoError(t, err)

	_, err = FloatValue[float32](lit)
	require.ErrorIs(t, err, ErrMismatch)

	value, err := FloatValue[float64](lit)
	require.NoError(t, err)
	require.Equal(t, 2.5, value)

	lit, err = DecodeFloat("2.5")
	require.NoError(t, err)

	value32, err := FloatValue[float32](lit)
	require.NoError(t, err)
	require.Equal(t, float32(2.5), value32)
}
