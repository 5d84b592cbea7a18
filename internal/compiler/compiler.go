// Package compiler implements the pattern component model and renders node
// sequences into regular expression syntax.
package compiler

import "strings"

// Compile renders nodes in order and concatenates the results.
// Each node renders independently: adjacent literals are not merged and
// consecutive classes are not simplified.
func Compile(nodes []Node) string {
	switch len(nodes) {
	case 0:
		return ""
	case 1:
		return nodes[0].Render()
	}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Render())
	}
	return sb.String()
}

// CountGroups returns the number of capturing groups in nodes, counting
// nested groups in the order their opening parenthesis appears.
func CountGroups(nodes []Node) int {
	count := 0
	for _, n := range nodes {
		count += countNodeGroups(n)
	}
	return count
}

func countNodeGroups(n Node) int {
	switch v := n.(type) {
	case Group:
		return 1 + CountGroups(v.Children)
	case Quantifier:
		return countNodeGroups(v.Target)
	default:
		return 0
	}
}
