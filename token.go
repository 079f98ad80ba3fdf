package litval

import "fmt"

// Value adapts the rendered text of a literal token to the decoders. The
// zero Value decodes the empty string; every As* method reports
// [ErrMismatch] when the text is not that kind of literal.
type Value struct {
	text string
	dec  *Decoder
}

// Of captures the rendered text of a token. Any token type that can render
// itself to its surface form works; the decoders only ever see the text and
// have no dependency on the token type.
func Of(token fmt.Stringer) Value {
	return dec.Of(token)
}

// Text adapts a plain string holding literal text, for callers without a
// token type at all.
func Text(text string) Value {
	return dec.Text(text)
}

// Of captures the rendered text of a token for decoding with d.
func (d *Decoder) Of(token fmt.Stringer) Value {
	return Value{text: token.String(), dec: d}
}

// Text adapts a plain string holding literal text for decoding with d.
func (d *Decoder) Text(text string) Value {
	return Value{text: text, dec: d}
}

// String returns the literal text the Value was built from.
func (v Value) String() string {
	return v.text
}

func (v Value) decoder() *Decoder {
	if v.dec == nil {
		return &dec
	}
	return v.dec
}

// AsInt decodes the text as an integer literal.
func (v Value) AsInt() (Int, error) {
	return v.decoder().DecodeInt(v.text)
}

// AsFloat decodes the text as a floating point literal.
func (v Value) AsFloat() (Float, error) {
	return DecodeFloat(v.text)
}

// AsString decodes the text as a string literal.
func (v Value) AsString() (string, error) {
	return DecodeString(v.text)
}

// AsChar decodes the text as a char literal.
func (v Value) AsChar() (rune, error) {
	return DecodeChar(v.text)
}

// AsBytes decodes the text as a byte string literal.
func (v Value) AsBytes() ([]byte, error) {
	return DecodeBytes(v.text)
}

// AsByte decodes the text as a byte literal.
func (v Value) AsByte() (byte, error) {
	return DecodeByte(v.text)
}

// AsInnerDoc classifies the text as an inner doc comment.
func (v Value) AsInnerDoc() (string, error) {
	return InnerDoc(v.text)
}

// AsOuterDoc classifies the text as an outer doc comment.
func (v Value) AsOuterDoc() (string, error) {
	return OuterDoc(v.text)
}
