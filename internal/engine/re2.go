package engine

import (
	"fmt"
	"regexp"
	"strings"
)

type re2Engine struct{}

// RE2 returns the engine backed by the standard library regexp package.
// Flags are translated into an inline flag group prefixed to the pattern.
func RE2() Engine {
	return re2Engine{}
}

func (re2Engine) Name() string {
	return "re2"
}

func (re2Engine) Compile(pattern string, flags Flags) (Matcher, error) {
	expr := flags.InlinePrefix() + pattern
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("re2: %w", err)
	}
	return &re2Matcher{re: re}, nil
}

type re2Matcher struct {
	re *regexp.Regexp
}

func (m *re2Matcher) Search(text string) (*Match, error) {
	return m.matchAt(text, m.re.FindStringSubmatchIndex(text)), nil
}

// MatchStart relies on leftmost-first semantics: if any match begins at
// offset 0, the leftmost match is that one.
func (m *re2Matcher) MatchStart(text string) (*Match, error) {
	loc := m.re.FindStringSubmatchIndex(text)
	if loc == nil || loc[0] != 0 {
		return nil, nil
	}
	return m.matchAt(text, loc), nil
}

func (m *re2Matcher) FindAll(text string) ([]string, error) {
	found := m.re.FindAllString(text, -1)
	if found == nil {
		return []string{}, nil
	}
	return found, nil
}

func (m *re2Matcher) ReplaceAll(text, repl string) (string, error) {
	return m.re.ReplaceAllLiteralString(text, repl), nil
}

func (m *re2Matcher) ReplaceAllFunc(text string, fn func(*Match) string) (string, error) {
	locs := m.re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return text, nil
	}
	var sb strings.Builder
	last := 0
	for _, loc := range locs {
		sb.WriteString(text[last:loc[0]])
		sb.WriteString(fn(m.matchAt(text, loc)))
		last = loc[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}

func (m *re2Matcher) Split(text string) ([]string, error) {
	return m.re.Split(text, -1), nil
}

func (m *re2Matcher) Test(text string) (bool, error) {
	return m.re.MatchString(text), nil
}

func (m *re2Matcher) NumGroups() int {
	return m.re.NumSubexp()
}

func (m *re2Matcher) String() string {
	return m.re.String()
}

// matchAt converts a submatch index slice into a Match.
func (m *re2Matcher) matchAt(text string, loc []int) *Match {
	if loc == nil {
		return nil
	}
	n := len(loc)/2 - 1
	match := &Match{
		Text:    text[loc[0]:loc[1]],
		Start:   loc[0],
		End:     loc[1],
		groups:  make([]string, n),
		matched: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 {
			continue
		}
		match.groups[i] = text[start:end]
		match.matched[i] = true
	}
	return match
}
