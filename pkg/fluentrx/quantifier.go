package fluentrx

import (
	"fmt"

	"github.com/KromDaniel/fluentrx/internal/compiler"
)

// quantify replaces the last component with q applied to it.
func (b *Builder) quantify(op string, q compiler.Quantifier) *Builder {
	if b.err != nil {
		return b
	}
	last, ok := b.nodes.Last()
	if !ok {
		return b.fail(op, ErrEmptyTarget)
	}
	q.Target = last
	return b.replaceLast(q)
}

// Exactly repeats the last component n times.
func (b *Builder) Exactly(n int) *Builder {
	if b.err == nil && b.nodes.Len() > 0 && n < 0 {
		return b.fail("Exactly", fmt.Errorf("%w: %d", ErrInvalidRepeat, n))
	}
	return b.quantify("Exactly", compiler.Quantifier{Kind: compiler.Exact, Min: n})
}

// Between repeats the last component at least min and at most max times.
func (b *Builder) Between(min, max int) *Builder {
	if b.err == nil && b.nodes.Len() > 0 && (min < 0 || max < min) {
		return b.fail("Between", fmt.Errorf("%w: {%d,%d}", ErrInvalidRepeat, min, max))
	}
	return b.quantify("Between", compiler.Quantifier{Kind: compiler.Range, Min: min, Max: max})
}

// Optional makes the last component match zero or one time.
func (b *Builder) Optional() *Builder {
	return b.quantify("Optional", compiler.Quantifier{Kind: compiler.Optional})
}

// ZeroOrMore repeats the last component any number of times.
func (b *Builder) ZeroOrMore() *Builder {
	return b.quantify("ZeroOrMore", compiler.Quantifier{Kind: compiler.ZeroOrMore})
}

// OneOrMore repeats the last component at least once.
func (b *Builder) OneOrMore() *Builder {
	return b.quantify("OneOrMore", compiler.Quantifier{Kind: compiler.OneOrMore})
}
