// Package engine adapts regular expression engines to the small matcher
// contract the builder relies on.
//
// Two engines are available: RE2, backed by the standard library regexp
// package, and Backtracking, backed by github.com/dlclark/regexp2. Both
// receive the same rendered pattern; only flag translation and index
// bookkeeping differ.
package engine

// Engine turns a rendered pattern and its mode flags into a Matcher.
type Engine interface {
	// Name identifies the engine in logs and error messages.
	Name() string
	// Compile builds a matcher. Errors come from the underlying engine.
	Compile(pattern string, flags Flags) (Matcher, error)
}

// Matcher executes a compiled pattern. Implementations are safe for
// concurrent use. Errors are only returned by engines that can fail while
// matching, for example on a timeout.
type Matcher interface {
	// Search returns the leftmost match in text, or nil.
	Search(text string) (*Match, error)
	// MatchStart returns the match beginning at the start of text, or nil.
	MatchStart(text string) (*Match, error)
	// FindAll returns every non-overlapping match in order.
	FindAll(text string) ([]string, error)
	// ReplaceAll replaces every match with repl taken literally.
	ReplaceAll(text, repl string) (string, error)
	// ReplaceAllFunc replaces every match with the result of fn.
	ReplaceAllFunc(text string, fn func(*Match) string) (string, error)
	// Split slices text into the substrings between matches.
	Split(text string) ([]string, error)
	// Test reports whether text contains at least one match.
	Test(text string) (bool, error)
	// NumGroups returns the number of capturing groups.
	NumGroups() int
	// String returns the expression handed to the engine.
	String() string
}

// Match is one match of a pattern in an input string.
// Offsets are byte offsets into the input.
type Match struct {
	Text  string
	Start int
	End   int

	groups  []string
	matched []bool
}

// Group returns the text of capturing group i, counted from 1 in the order
// the groups were opened. Group 0 is the whole match. Groups that did not
// participate in the match, and out of range indexes, return "".
func (m *Match) Group(i int) string {
	if i == 0 {
		return m.Text
	}
	if i < 1 || i > len(m.groups) {
		return ""
	}
	return m.groups[i-1]
}

// GroupMatched reports whether group i participated in the match.
func (m *Match) GroupMatched(i int) bool {
	if i == 0 {
		return true
	}
	if i < 1 || i > len(m.matched) {
		return false
	}
	return m.matched[i-1]
}

// NumGroups returns the number of capturing groups, excluding group 0.
func (m *Match) NumGroups() int {
	return len(m.groups)
}

// Groups returns a copy of the capturing group texts, starting at group 1.
func (m *Match) Groups() []string {
	out := make([]string, len(m.groups))
	copy(out, m.groups)
	return out
}
