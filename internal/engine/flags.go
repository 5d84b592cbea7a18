package engine

import "strings"

// Flags is a set of matching modes.
type Flags uint8

const (
	// IgnoreCase matches letters regardless of case.
	IgnoreCase Flags = 1 << iota
	// Multiline makes ^ and $ match at line boundaries.
	Multiline
)

// Has reports whether every flag in o is set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// With returns f with o added. f is not modified.
func (f Flags) With(o Flags) Flags {
	return f | o
}

// String returns the RE2 inline flag letters, for example "im".
func (f Flags) String() string {
	var sb strings.Builder
	if f.Has(IgnoreCase) {
		sb.WriteByte('i')
	}
	if f.Has(Multiline) {
		sb.WriteByte('m')
	}
	return sb.String()
}

// InlinePrefix returns the flag group that enables f in RE2 syntax,
// or "" when no flag is set.
func (f Flags) InlinePrefix() string {
	letters := f.String()
	if letters == "" {
		return ""
	}
	return "(?" + letters + ")"
}
