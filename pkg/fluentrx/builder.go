// Package fluentrx builds regular expressions from chains of named
// components.
//
// Every method returns a new *Builder and leaves its receiver untouched, so
// a partially built expression can be shared and extended along several
// branches:
//
//	phone := fluentrx.Regex.Digit().Exactly(3).Then("-")
//	local := phone.Digit().Exactly(4)
//	full := phone.Digit().Exactly(3).Then("-").Digit().Exactly(4)
//
// Builders render to the syntax accepted by the standard library regexp
// package. Matching is delegated to an Engine, RE2 by default.
package fluentrx

import (
	"fmt"
	"sync"

	"github.com/KromDaniel/fluentrx/internal/compiler"
	"github.com/KromDaniel/fluentrx/internal/nodelist"
)

// Regex is the empty root builder. Chains usually start here.
var Regex = New()

// Builder is an immutable sequence of pattern components plus matching
// flags. The zero value is an empty builder using RE2.
type Builder struct {
	nodes  *nodelist.List[compiler.Node]
	flags  Flags
	engine Engine
	err    error

	once       sync.Once
	matcher    Matcher
	compileErr error
}

// New returns an empty builder using the RE2 engine.
func New() *Builder {
	return &Builder{engine: RE2()}
}

func (b *Builder) derive(nodes *nodelist.List[compiler.Node]) *Builder {
	return &Builder{nodes: nodes, flags: b.flags, engine: b.engine}
}

func (b *Builder) extend(nodes ...compiler.Node) *Builder {
	if b.err != nil {
		return b
	}
	return b.derive(b.nodes.Append(nodes...))
}

func (b *Builder) replaceLast(n compiler.Node) *Builder {
	return b.derive(b.nodes.ReplaceLast(n))
}

func (b *Builder) fail(op string, err error) *Builder {
	return &Builder{flags: b.flags, engine: b.engine, err: &OpError{Op: op, Err: err}}
}

// StartsWith anchors the pattern at the start of input, followed by each of
// text as a literal.
func (b *Builder) StartsWith(text ...string) *Builder {
	nodes := []compiler.Node{compiler.Anchor{Kind: compiler.AnchorStart}}
	for _, t := range text {
		nodes = append(nodes, compiler.Literal{Text: t})
	}
	return b.extend(nodes...)
}

// EndsWith appends each of text as a literal and then anchors the pattern at
// the end of input.
func (b *Builder) EndsWith(text ...string) *Builder {
	nodes := make([]compiler.Node, 0, len(text)+1)
	for _, t := range text {
		nodes = append(nodes, compiler.Literal{Text: t})
	}
	return b.extend(append(nodes, compiler.Anchor{Kind: compiler.AnchorEnd})...)
}

// Then appends text to be matched verbatim.
func (b *Builder) Then(text string) *Builder {
	return b.extend(compiler.Literal{Text: text})
}

func (b *Builder) class(kind compiler.ClassKind) *Builder {
	return b.extend(compiler.CharClass{Kind: kind})
}

func (b *Builder) classes(kind compiler.ClassKind) *Builder {
	return b.extend(compiler.Quantifier{Target: compiler.CharClass{Kind: kind}, Kind: compiler.OneOrMore})
}

// Digit matches one digit.
func (b *Builder) Digit() *Builder { return b.class(compiler.Digit) }

// Digits matches one or more digits.
func (b *Builder) Digits() *Builder { return b.classes(compiler.Digit) }

// Word matches one word character: a letter, digit or underscore.
func (b *Builder) Word() *Builder { return b.class(compiler.Word) }

// Words matches one or more word characters.
func (b *Builder) Words() *Builder { return b.classes(compiler.Word) }

// Whitespace matches one whitespace character.
func (b *Builder) Whitespace() *Builder { return b.class(compiler.Whitespace) }

// Whitespaces matches one or more whitespace characters.
func (b *Builder) Whitespaces() *Builder { return b.classes(compiler.Whitespace) }

// AnyChar matches any character except a newline.
func (b *Builder) AnyChar() *Builder { return b.class(compiler.Any) }

// AnyChars matches one or more characters other than newline.
func (b *Builder) AnyChars() *Builder { return b.classes(compiler.Any) }

// Letter matches one ASCII letter.
func (b *Builder) Letter() *Builder { return b.class(compiler.Letter) }

// Letters matches one or more ASCII letters.
func (b *Builder) Letters() *Builder { return b.classes(compiler.Letter) }

// AnyOf matches any one of options. Single-character options become a
// bracket expression; otherwise the options are alternated in order. With no
// options the component matches nothing.
func (b *Builder) AnyOf(options ...string) *Builder {
	return b.extend(compiler.AnyOf{Options: append([]string(nil), options...)})
}

// Capture appends a capturing group around the components of other. Later
// changes to other's chain do not affect the group.
func (b *Builder) Capture(other *Builder) *Builder {
	if b.err != nil {
		return b
	}
	if other == nil {
		return b.extend(compiler.Group{})
	}
	if other.err != nil {
		return &Builder{flags: b.flags, engine: b.engine, err: other.err}
	}
	return b.extend(compiler.Group{Children: other.nodes.Slice()})
}

// Using returns a builder that matches with e. A nil e selects RE2.
func (b *Builder) Using(e Engine) *Builder {
	if b.err != nil {
		return b
	}
	if e == nil {
		e = RE2()
	}
	return &Builder{nodes: b.nodes, flags: b.flags, engine: e}
}

// Err returns the error recorded by the call that broke the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Nodes returns the number of top-level components.
func (b *Builder) Nodes() int {
	return b.nodes.Len()
}

// NumGroups returns the number of capturing groups in the pattern.
func (b *Builder) NumGroups() int {
	return compiler.CountGroups(b.nodes.Slice())
}

// Engine returns the engine the builder compiles with.
func (b *Builder) Engine() Engine {
	if b.engine == nil {
		return RE2()
	}
	return b.engine
}

// Pattern renders the components into pattern syntax. Flags are not
// included. An errored builder renders as "".
func (b *Builder) Pattern() string {
	if b.err != nil {
		return ""
	}
	return compiler.Compile(b.nodes.Slice())
}

// String returns Pattern.
func (b *Builder) String() string {
	return b.Pattern()
}

// GoString helps %#v show the rendered pattern and flags.
func (b *Builder) GoString() string {
	if b.err != nil {
		return fmt.Sprintf("fluentrx.Builder{err: %v}", b.err)
	}
	return fmt.Sprintf("fluentrx.Builder{pattern: %q, flags: %q}", b.Pattern(), b.flags.String())
}
