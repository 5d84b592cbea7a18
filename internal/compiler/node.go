package compiler

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Node is one immutable unit of pattern structure.
//
// The set of implementations is closed: only the types declared in this
// package satisfy Node.
type Node interface {
	// Render returns the engine syntax for the node.
	Render() string
	node()
}

// Literal is text matched verbatim.
type Literal struct {
	Text string
}

// AnchorKind selects the position an Anchor asserts.
type AnchorKind int

const (
	// AnchorStart asserts the start of input (or line, in multiline mode).
	AnchorStart AnchorKind = iota
	// AnchorEnd asserts the end of input (or line, in multiline mode).
	AnchorEnd
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return fmt.Sprintf("AnchorKind(%d)", int(k))
	}
}

// Anchor is a zero-width position assertion.
type Anchor struct {
	Kind AnchorKind
}

// CharClass matches one character of a predefined class.
type CharClass struct {
	Kind ClassKind
}

// NegatedCharClass matches one character outside a predefined class.
type NegatedCharClass struct {
	Kind ClassKind
}

// AnyOf matches any one of its options.
type AnyOf struct {
	Options []string
}

// Group is a capturing group around a node sequence.
type Group struct {
	Children []Node
}

// ExcludeFilter matches one character of Base that is not in Excluded.
type ExcludeFilter struct {
	Base     ClassKind
	Excluded string
}

func (Literal) node()          {}
func (Anchor) node()           {}
func (CharClass) node()        {}
func (NegatedCharClass) node() {}
func (AnyOf) node()            {}
func (Group) node()            {}
func (Quantifier) node()       {}
func (ExcludeFilter) node()    {}

func (l Literal) Render() string {
	return QuoteLiteral(l.Text)
}

func (a Anchor) Render() string {
	switch a.Kind {
	case AnchorStart:
		return StartAnchor
	case AnchorEnd:
		return EndAnchor
	default:
		panic(fmt.Sprintf("compiler: unknown anchor kind %d", int(a.Kind)))
	}
}

func (c CharClass) Render() string {
	return c.Kind.Positive()
}

func (c NegatedCharClass) Render() string {
	return c.Kind.Negated()
}

// Render produces a bracket expression when every option is a single
// character and a non-capturing alternation otherwise. Options keep their
// input order and are not deduplicated.
func (a AnyOf) Render() string {
	if len(a.Options) == 0 {
		return MatchNothing
	}
	if allSingleRunes(a.Options) {
		return bracketOpen + QuoteBracket(strings.Join(a.Options, "")) + bracketClose
	}
	quoted := make([]string, len(a.Options))
	for i, opt := range a.Options {
		quoted[i] = QuoteLiteral(opt)
	}
	return nonCapturingOpen + strings.Join(quoted, alternation) + groupClose
}

func (g Group) Render() string {
	return groupOpen + Compile(g.Children) + groupClose
}

// Render builds a single negated bracket expression. A shorthand negation
// such as \W is placed inside the brackets as is; a bracket negation such as
// [^a-zA-Z] has its interior spliced in, so brackets never nest.
func (e ExcludeFilter) Render() string {
	negated := e.Base.Negated()
	excluded := QuoteBracket(e.Excluded)
	if strings.HasPrefix(negated, negatedOpen) && strings.HasSuffix(negated, bracketClose) {
		inner := negated[len(negatedOpen) : len(negated)-len(bracketClose)]
		return negatedOpen + inner + excluded + bracketClose
	}
	return negatedOpen + negated + excluded + bracketClose
}

func allSingleRunes(options []string) bool {
	for _, opt := range options {
		if utf8.RuneCountInString(opt) != 1 {
			return false
		}
	}
	return true
}
