package compiler

import (
	"fmt"
	"regexp/syntax"
)

// Analysis describes a rendered pattern as parsed by the RE2 syntax parser.
type Analysis struct {
	Pattern string

	// Captures is the number of capturing groups.
	Captures int

	// HasRepeatingCaptures is true when a capturing group sits inside a
	// quantifier. Such a group only reports its last iteration.
	HasRepeatingCaptures bool

	// AnchoredStart and AnchoredEnd report a leading ^ or trailing $.
	AnchoredStart bool
	AnchoredEnd   bool
}

// Analyze parses pattern with Perl syntax flags and reports its structure.
// An error means the pattern is not valid RE2 syntax.
func Analyze(pattern string) (Analysis, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to parse pattern: %w", err)
	}

	return Analysis{
		Pattern:              pattern,
		Captures:             re.MaxCap(),
		HasRepeatingCaptures: walkCheckRepeating(re, false),
		AnchoredStart:        hasLeading(re, syntax.OpBeginText, syntax.OpBeginLine),
		AnchoredEnd:          hasTrailing(re, syntax.OpEndText, syntax.OpEndLine),
	}, nil
}

// walkCheckRepeating recursively walks the AST to detect captures in repeating context.
func walkCheckRepeating(re *syntax.Regexp, inRepeat bool) bool {
	if re.Op == syntax.OpCapture && inRepeat {
		return true
	}

	isRepeating := false
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		isRepeating = true
	}

	for _, sub := range re.Sub {
		if walkCheckRepeating(sub, inRepeat || isRepeating) {
			return true
		}
	}

	return false
}

func hasLeading(re *syntax.Regexp, ops ...syntax.Op) bool {
	for re.Op == syntax.OpConcat && len(re.Sub) > 0 {
		re = re.Sub[0]
	}
	return isOneOf(re.Op, ops)
}

func hasTrailing(re *syntax.Regexp, ops ...syntax.Op) bool {
	for re.Op == syntax.OpConcat && len(re.Sub) > 0 {
		re = re.Sub[len(re.Sub)-1]
	}
	return isOneOf(re.Op, ops)
}

func isOneOf(op syntax.Op, ops []syntax.Op) bool {
	for _, o := range ops {
		if op == o {
			return true
		}
	}
	return false
}
