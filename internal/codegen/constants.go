// Package codegen provides code generation helpers and constants.
package codegen

import (
	"go/token"
	"unicode"
	"unicode/utf8"
)

// Names used in generated code
const (
	RegexpPath      = "regexp"
	MustCompileName = "MustCompile"
	GeneratedHeader = "Code generated by fluentrx. DO NOT EDIT."
)

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsIdentifier reports whether name can be declared as a Go identifier.
func IsIdentifier(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}
