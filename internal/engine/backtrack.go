package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// BacktrackOption configures the Backtracking engine.
type BacktrackOption func(*backtrackEngine)

// WithMatchTimeout bounds the time a single match attempt may take.
// A zero duration disables the limit.
func WithMatchTimeout(d time.Duration) BacktrackOption {
	return func(e *backtrackEngine) {
		e.timeout = d
	}
}

type backtrackEngine struct {
	timeout time.Duration
}

// Backtracking returns the engine backed by github.com/dlclark/regexp2,
// compiled in RE2 compatibility mode so that \d, \s, \w and $ behave as they
// do in the standard library.
func Backtracking(opts ...BacktrackOption) Engine {
	e := &backtrackEngine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *backtrackEngine) Name() string {
	return "regexp2"
}

func (e *backtrackEngine) Compile(pattern string, flags Flags) (Matcher, error) {
	var opts regexp2.RegexOptions = regexp2.RE2
	if flags.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if flags.Has(Multiline) {
		opts |= regexp2.Multiline
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("regexp2: %w", err)
	}
	if e.timeout > 0 {
		re.MatchTimeout = e.timeout
	}
	return &backtrackMatcher{re: re, flags: flags}, nil
}

type backtrackMatcher struct {
	re    *regexp2.Regexp
	flags Flags
}

func (m *backtrackMatcher) Search(text string) (*Match, error) {
	found, err := m.re.FindStringMatch(text)
	if err != nil || found == nil {
		return nil, wrapMatchErr(err)
	}
	return m.convert(text, newRuneIndex(text), found), nil
}

func (m *backtrackMatcher) MatchStart(text string) (*Match, error) {
	match, err := m.Search(text)
	if err != nil || match == nil || match.Start != 0 {
		return nil, err
	}
	return match, nil
}

func (m *backtrackMatcher) FindAll(text string) ([]string, error) {
	idx := newRuneIndex(text)
	out := []string{}
	err := m.each(text, func(found *regexp2.Match) {
		start, end := idx.bytes(found.Index, found.Length)
		out = append(out, text[start:end])
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *backtrackMatcher) ReplaceAll(text, repl string) (string, error) {
	out, err := m.re.ReplaceFunc(text, func(regexp2.Match) string {
		return repl
	}, -1, -1)
	if err != nil {
		return "", wrapMatchErr(err)
	}
	return out, nil
}

func (m *backtrackMatcher) ReplaceAllFunc(text string, fn func(*Match) string) (string, error) {
	idx := newRuneIndex(text)
	var sb strings.Builder
	last := 0
	err := m.each(text, func(found *regexp2.Match) {
		match := m.convert(text, idx, found)
		sb.WriteString(text[last:match.Start])
		sb.WriteString(fn(match))
		last = match.End
	})
	if err != nil {
		return "", err
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}

// Split follows the conventions of regexp.Regexp.Split with n < 0.
func (m *backtrackMatcher) Split(text string) ([]string, error) {
	if len(text) == 0 && m.re.String() != "" {
		return []string{""}, nil
	}

	idx := newRuneIndex(text)
	var locs [][2]int
	err := m.each(text, func(found *regexp2.Match) {
		start, end := idx.bytes(found.Index, found.Length)
		locs = append(locs, [2]int{start, end})
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(locs)+1)
	beg, end := 0, 0
	for _, loc := range locs {
		end = loc[0]
		if loc[1] != 0 {
			out = append(out, text[beg:end])
		}
		beg = loc[1]
	}
	if end != len(text) {
		out = append(out, text[beg:])
	}
	return out, nil
}

func (m *backtrackMatcher) Test(text string) (bool, error) {
	ok, err := m.re.MatchString(text)
	if err != nil {
		return false, wrapMatchErr(err)
	}
	return ok, nil
}

func (m *backtrackMatcher) NumGroups() int {
	return len(m.re.GetGroupNumbers()) - 1
}

func (m *backtrackMatcher) String() string {
	return m.flags.InlinePrefix() + m.re.String()
}

// each calls fn for every successive match in text.
func (m *backtrackMatcher) each(text string, fn func(*regexp2.Match)) error {
	found, err := m.re.FindStringMatch(text)
	for err == nil && found != nil {
		fn(found)
		found, err = m.re.FindNextMatch(found)
	}
	return wrapMatchErr(err)
}

// convert slices text by byte offsets so that invalid UTF-8, which regexp2
// decodes to U+FFFD, is reported as the original bytes.
func (m *backtrackMatcher) convert(text string, idx runeIndex, found *regexp2.Match) *Match {
	start, end := idx.bytes(found.Index, found.Length)
	n := m.NumGroups()
	match := &Match{
		Text:    text[start:end],
		Start:   start,
		End:     end,
		groups:  make([]string, n),
		matched: make([]bool, n),
	}
	for i := 1; i <= n; i++ {
		g := found.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		gs, ge := idx.bytes(g.Index, g.Length)
		match.groups[i-1] = text[gs:ge]
		match.matched[i-1] = true
	}
	return match
}

func wrapMatchErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("regexp2: %w", err)
}

// runeIndex maps regexp2 rune positions to byte offsets.
type runeIndex []int

func newRuneIndex(text string) runeIndex {
	idx := make(runeIndex, 0, len(text)+1)
	for i := range text {
		idx = append(idx, i)
	}
	return append(idx, len(text))
}

// bytes converts a rune start and rune length into a byte range.
func (r runeIndex) bytes(index, length int) (int, int) {
	return r[index], r[index+length]
}
