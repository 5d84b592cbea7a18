package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// QuantifierKind selects how often a quantified node repeats.
type QuantifierKind int

const (
	// OneOrMore repeats the target at least once.
	OneOrMore QuantifierKind = iota
	// ZeroOrMore repeats the target any number of times.
	ZeroOrMore
	// Optional matches the target zero or one time.
	Optional
	// Exact repeats the target exactly Min times.
	Exact
	// Range repeats the target between Min and Max times.
	Range
)

func (k QuantifierKind) String() string {
	switch k {
	case OneOrMore:
		return "one-or-more"
	case ZeroOrMore:
		return "zero-or-more"
	case Optional:
		return "optional"
	case Exact:
		return "exact"
	case Range:
		return "range"
	default:
		return fmt.Sprintf("QuantifierKind(%d)", int(k))
	}
}

// Quantifier applies a repetition to its Target.
// Min is the count for Exact and the lower bound for Range; Max is the
// upper bound for Range. Both are ignored by the other kinds.
type Quantifier struct {
	Target Node
	Kind   QuantifierKind
	Min    int
	Max    int
}

// Render renders the target, wraps it in a non-capturing group when the
// suffix would otherwise bind only to its last unit, and appends the suffix.
func (q Quantifier) Render() string {
	inner := q.Target.Render()
	if NeedsWrap(q.Target, inner) {
		inner = nonCapturingOpen + inner + groupClose
	}
	return inner + q.suffix()
}

// Requantify returns a copy of q with the same repetition applied to target.
func (q Quantifier) Requantify(target Node) Quantifier {
	q.Target = target
	return q
}

func (q Quantifier) suffix() string {
	switch q.Kind {
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	case Optional:
		return "?"
	case Exact:
		return "{" + strconv.Itoa(q.Min) + "}"
	case Range:
		return "{" + strconv.Itoa(q.Min) + "," + strconv.Itoa(q.Max) + "}"
	default:
		panic(fmt.Sprintf("compiler: unknown quantifier kind %d", int(q.Kind)))
	}
}

// NeedsWrap reports whether rendered, the rendering of target, must be
// enclosed in a non-capturing group before a quantifier suffix is appended.
//
// Single characters, classes and groups are atomic already. So is any
// rendering that is a complete bracket expression or parenthesized group.
func NeedsWrap(target Node, rendered string) bool {
	if utf8.RuneCountInString(rendered) <= 1 {
		return false
	}
	switch target.(type) {
	case CharClass, NegatedCharClass, Group:
		return false
	}
	if strings.HasPrefix(rendered, groupOpen) && strings.HasSuffix(rendered, groupClose) {
		return false
	}
	if strings.HasPrefix(rendered, bracketOpen) && strings.HasSuffix(rendered, bracketClose) {
		return false
	}
	return true
}
