package compiler

import (
	"regexp"
	"strings"
)

// QuoteLiteral escapes every character that has a special meaning outside a
// bracket expression.
func QuoteLiteral(s string) string {
	return regexp.QuoteMeta(s)
}

// QuoteBracket escapes the characters that are special inside a bracket
// expression, so each rune of s stands for itself between [ and ].
func QuoteBracket(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', ']', '[', '^', '-':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
