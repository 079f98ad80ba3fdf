package litval

import "strings"

// OuterDoc classifies s as an outer doc comment (`///` or `/**`). The full
// comment text is returned unmodified; callers strip the markers themselves.
func OuterDoc(s string) (string, error) {
	if strings.HasPrefix(s, "///") || strings.HasPrefix(s, "/**") {
		return s, nil
	}
	return "", ErrMismatch
}

// InnerDoc classifies s as an inner doc comment (`//!` or `/*!`). The full
// comment text is returned unmodified.
func InnerDoc(s string) (string, error) {
	if strings.HasPrefix(s, "//!") || strings.HasPrefix(s, "/*!") {
		return s, nil
	}
	return "", ErrMismatch
}
