// Package litval decodes the surface text of source literal tokens into their
// semantic values. It understands integer literals in all four bases with
// underscore separators and type suffixes, floating point literals, quoted
// strings and byte strings with the full escape table (including `\xNN`,
// `\u{...}` and backslash-newline continuation), hash-fenced raw strings,
// char and byte literals, and doc comments.
//
// The decoders accept the exact token text, markers and suffix included, and
// report "this is not that kind of literal" through [ErrMismatch] so callers
// can dispatch by trying each kind in turn. Text that matches a kind but
// violates the literal grammar is reported through [ErrMalformed]; the
// decoders assume their input was produced by a tokenizer and do not try to
// recover from it.
//
// Any token that can render itself to text can be decoded through [Of], and a
// plain string through [Text]. The [Unmarshal] function decodes a literal
// token directly into a Go value, checking the literal's suffix against the
// target's width.
package litval
