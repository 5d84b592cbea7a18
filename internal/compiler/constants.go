package compiler

// Anchor renderings.
const (
	StartAnchor = "^"
	EndAnchor   = "$"
)

// MatchNothing is a bracket expression that no character satisfies.
// It is the negated form of the Any class.
const MatchNothing = `[^\s\S]`

// Rendering tokens for grouping constructs.
const (
	nonCapturingOpen = "(?:"
	groupOpen        = "("
	groupClose       = ")"
	bracketOpen      = "["
	negatedOpen      = "[^"
	bracketClose     = "]"
	alternation      = "|"
)
