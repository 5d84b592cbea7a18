package compiler

import "fmt"

// ClassKind identifies one of the predefined character classes.
type ClassKind int

const (
	// Digit matches a decimal digit.
	Digit ClassKind = iota
	// Word matches a word character (letter, digit or underscore).
	Word
	// Whitespace matches a whitespace character.
	Whitespace
	// Any matches any character except newline.
	Any
	// Letter matches an ASCII letter.
	Letter
)

// ClassKinds lists every class kind in declaration order.
var ClassKinds = []ClassKind{Digit, Word, Whitespace, Any, Letter}

// classForms holds the positive and negated rendering of each class kind.
// Adding a class kind means adding one row here.
var classForms = [...]struct {
	name     string
	positive string
	negated  string
}{
	Digit:      {"digit", `\d`, `\D`},
	Word:       {"word", `\w`, `\W`},
	Whitespace: {"whitespace", `\s`, `\S`},
	Any:        {"any", `.`, MatchNothing},
	Letter:     {"letter", `[a-zA-Z]`, `[^a-zA-Z]`},
}

func (k ClassKind) valid() bool {
	return k >= 0 && int(k) < len(classForms)
}

// String returns the human-readable name of the class kind.
func (k ClassKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("ClassKind(%d)", int(k))
	}
	return classForms[k].name
}

// Positive returns the engine syntax matching one character of the class.
func (k ClassKind) Positive() string {
	if !k.valid() {
		panic(fmt.Sprintf("compiler: unknown class kind %d", int(k)))
	}
	return classForms[k].positive
}

// Negated returns the engine syntax matching one character outside the class.
func (k ClassKind) Negated() string {
	if !k.valid() {
		panic(fmt.Sprintf("compiler: unknown class kind %d", int(k)))
	}
	return classForms[k].negated
}
