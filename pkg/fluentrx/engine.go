package fluentrx

import (
	"time"

	"github.com/KromDaniel/fluentrx/internal/engine"
)

type (
	// Engine compiles rendered patterns into matchers.
	Engine = engine.Engine
	// Matcher is a compiled pattern.
	Matcher = engine.Matcher
	// Match describes one match and its capturing groups.
	Match = engine.Match
	// Flags is a set of matching modes.
	Flags = engine.Flags
	// BacktrackOption configures the Backtracking engine.
	BacktrackOption = engine.BacktrackOption
)

// Matching flags, set with Builder.IgnoreCase and Builder.Multiline.
const (
	IgnoreCase = engine.IgnoreCase
	Multiline  = engine.Multiline
)

// RE2 returns the default engine, backed by the standard library regexp
// package. Matching runs in time linear in the input.
func RE2() Engine {
	return engine.RE2()
}

// Backtracking returns an engine backed by github.com/dlclark/regexp2.
func Backtracking(opts ...BacktrackOption) Engine {
	return engine.Backtracking(opts...)
}

// WithMatchTimeout bounds a single Backtracking match attempt.
func WithMatchTimeout(d time.Duration) BacktrackOption {
	return engine.WithMatchTimeout(d)
}

// IgnoreCase returns a builder that matches letters regardless of case.
func (b *Builder) IgnoreCase() *Builder {
	return b.withFlags(IgnoreCase)
}

// Multiline returns a builder whose anchors match at line boundaries.
func (b *Builder) Multiline() *Builder {
	return b.withFlags(Multiline)
}

// Flags returns the matching flags set on b.
func (b *Builder) Flags() Flags {
	return b.flags
}

func (b *Builder) withFlags(f Flags) *Builder {
	if b.err != nil {
		return b
	}
	return &Builder{nodes: b.nodes, flags: b.flags.With(f), engine: b.engine}
}
