// Package replace parses replacement templates that reference the groups of
// a match by index.
package replace

import (
	"fmt"
	"strings"
)

// SegmentType indicates the type of segment in a replacement template.
type SegmentType int

const (
	// SegmentLiteral represents literal text.
	SegmentLiteral SegmentType = iota
	// SegmentGroup represents a reference to a group by index. Index 0 is the
	// full match.
	SegmentGroup
)

// Segment is one parsed piece of a template.
type Segment struct {
	Type    SegmentType
	Literal string // SegmentLiteral only
	Index   int    // SegmentGroup only
}

// Template is a parsed replacement template.
type Template struct {
	Original string
	Segments []Segment
	maxGroup int
}

// Parse parses a replacement template.
// Template syntax:
//   - $0 or ${0}: full match
//   - $1 ... $99 or ${n}: group by index
//   - $$: literal dollar sign
//   - a $ not followed by one of the above: literal dollar sign
//
// Braces must enclose a decimal index; anything else is an error.
func Parse(template string) (*Template, error) {
	t := &Template{
		Original: template,
		Segments: make([]Segment, 0),
	}

	i := 0
	literalStart := 0
	for i < len(template) {
		if template[i] != '$' {
			i++
			continue
		}

		if i > literalStart {
			t.literal(template[literalStart:i])
		}

		if i+1 >= len(template) {
			t.literal("$")
			i++
			literalStart = i
			continue
		}

		switch next := template[i+1]; {
		case next == '$':
			t.literal("$")
			i += 2

		case next == '{':
			index, consumed, err := parseBracedRef(template[i:])
			if err != nil {
				return nil, fmt.Errorf("replace: at position %d: %w", i, err)
			}
			t.group(index)
			i += consumed

		case next >= '0' && next <= '9':
			index, consumed := parseIndexedRef(template[i:])
			t.group(index)
			i += consumed

		default:
			t.literal("$")
			i++
		}
		literalStart = i
	}

	if i > literalStart {
		t.literal(template[literalStart:i])
	}
	return t, nil
}

// MaxGroup returns the highest group index the template references, or 0.
func (t *Template) MaxGroup() int {
	return t.maxGroup
}

// Expand renders the template, looking up each referenced group with group.
func (t *Template) Expand(group func(index int) string) string {
	var sb strings.Builder
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentLiteral:
			sb.WriteString(seg.Literal)
		case SegmentGroup:
			sb.WriteString(group(seg.Index))
		}
	}
	return sb.String()
}

func (t *Template) literal(s string) {
	// Adjacent literals such as "a$$b" collapse into one segment.
	if n := len(t.Segments); n > 0 && t.Segments[n-1].Type == SegmentLiteral {
		t.Segments[n-1].Literal += s
		return
	}
	t.Segments = append(t.Segments, Segment{Type: SegmentLiteral, Literal: s})
}

func (t *Template) group(index int) {
	t.Segments = append(t.Segments, Segment{Type: SegmentGroup, Index: index})
	if index > t.maxGroup {
		t.maxGroup = index
	}
}

// parseBracedRef parses ${n} starting at s[0]='$', s[1]='{'.
func parseBracedRef(s string) (int, int, error) {
	closeIdx := strings.IndexByte(s, '}')
	if closeIdx == -1 {
		return 0, 0, fmt.Errorf("unclosed ${")
	}

	content := s[2:closeIdx]
	if len(content) == 0 {
		return 0, 0, fmt.Errorf("empty ${}")
	}

	index := 0
	for j := 0; j < len(content); j++ {
		if content[j] < '0' || content[j] > '9' {
			return 0, 0, fmt.Errorf("invalid group reference ${%s}", content)
		}
		index = index*10 + int(content[j]-'0')
	}
	return index, closeIdx + 1, nil
}

// parseIndexedRef parses $N or $NN. $0 never takes a second digit.
func parseIndexedRef(s string) (int, int) {
	index := int(s[1] - '0')
	if index == 0 {
		return 0, 2
	}
	if len(s) > 2 && s[2] >= '0' && s[2] <= '9' {
		return index*10 + int(s[2]-'0'), 3
	}
	return index, 2
}
