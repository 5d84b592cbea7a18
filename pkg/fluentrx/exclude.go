package fluentrx

import (
	"fmt"

	"github.com/KromDaniel/fluentrx/internal/compiler"
)

// ExcludeView appends negated character classes to the builder it was taken
// from. It holds no state of its own.
type ExcludeView struct {
	b *Builder
}

// Exclude returns the negation view of b.
func (b *Builder) Exclude() ExcludeView {
	return ExcludeView{b: b}
}

func (v ExcludeView) class(kind compiler.ClassKind) *Builder {
	return v.b.extend(compiler.NegatedCharClass{Kind: kind})
}

func (v ExcludeView) classes(kind compiler.ClassKind) *Builder {
	return v.b.extend(compiler.Quantifier{Target: compiler.NegatedCharClass{Kind: kind}, Kind: compiler.OneOrMore})
}

// Digit matches one character that is not a digit.
func (v ExcludeView) Digit() *Builder { return v.class(compiler.Digit) }

// Digits matches one or more characters that are not digits.
func (v ExcludeView) Digits() *Builder { return v.classes(compiler.Digit) }

// Word matches one non-word character.
func (v ExcludeView) Word() *Builder { return v.class(compiler.Word) }

// Words matches one or more non-word characters.
func (v ExcludeView) Words() *Builder { return v.classes(compiler.Word) }

// Whitespace matches one non-whitespace character.
func (v ExcludeView) Whitespace() *Builder { return v.class(compiler.Whitespace) }

// Whitespaces matches one or more non-whitespace characters.
func (v ExcludeView) Whitespaces() *Builder { return v.classes(compiler.Whitespace) }

// Letter matches one character that is not an ASCII letter.
func (v ExcludeView) Letter() *Builder { return v.class(compiler.Letter) }

// Letters matches one or more characters that are not ASCII letters.
func (v ExcludeView) Letters() *Builder { return v.classes(compiler.Letter) }

// AnyChar matches nothing: no character is outside the set of all
// characters.
func (v ExcludeView) AnyChar() *Builder { return v.class(compiler.Any) }

// AnyChars is the one-or-more form of AnyChar and likewise matches nothing.
func (v ExcludeView) AnyChars() *Builder { return v.classes(compiler.Any) }

// Excluding narrows the trailing character class so that it no longer
// matches any character in chars. The trailing component must be a class
// such as Digit or Letters; a quantifier on it is kept.
func (b *Builder) Excluding(chars string) *Builder {
	const op = "Excluding"
	if b.err != nil {
		return b
	}
	last, ok := b.nodes.Last()
	if !ok {
		return b.fail(op, fmt.Errorf("%w: %w", ErrInvalidExclusionTarget, ErrEmptyTarget))
	}
	switch n := last.(type) {
	case compiler.CharClass:
		return b.replaceLast(compiler.ExcludeFilter{Base: n.Kind, Excluded: chars})
	case compiler.Quantifier:
		if class, ok := n.Target.(compiler.CharClass); ok {
			return b.replaceLast(n.Requantify(compiler.ExcludeFilter{Base: class.Kind, Excluded: chars}))
		}
	}
	return b.fail(op, fmt.Errorf("%w: last component renders %q", ErrInvalidExclusionTarget, last.Render()))
}
