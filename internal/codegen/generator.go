package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
)

// Pattern is one package-level variable to generate.
type Pattern struct {
	// Name is the exported variable name.
	Name string
	// Expr is the complete expression, inline flags included.
	Expr string
	// Doc is the variable's doc comment. Empty selects a default that
	// quotes Expr.
	Doc string
}

// Config describes a generated file.
type Config struct {
	Package  string
	Patterns []Pattern
}

// File builds the jennifer file declaring one regexp.MustCompile variable
// per pattern, in order.
func File(cfg Config) (*jen.File, error) {
	if !IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("invalid package name %q", cfg.Package)
	}
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns")
	}

	seen := make(map[string]bool, len(cfg.Patterns))
	defs := make([]jen.Code, 0, 2*len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		if !IsIdentifier(p.Name) {
			return nil, fmt.Errorf("invalid variable name %q", p.Name)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate variable name %q", p.Name)
		}
		seen[p.Name] = true

		for _, line := range docLines(p) {
			defs = append(defs, jen.Comment(line))
		}
		defs = append(defs, jen.Id(p.Name).Op("=").Qual(RegexpPath, MustCompileName).Call(jen.Lit(p.Expr)))
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(GeneratedHeader)
	f.Var().Defs(defs...)
	return f, nil
}

// Source renders the generated file as formatted Go source.
func Source(cfg Config) ([]byte, error) {
	f, err := File(cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// docLines returns the doc comment for p, one entry per // line.
func docLines(p Pattern) []string {
	if p.Doc == "" {
		return []string{fmt.Sprintf("%s matches %s.", p.Name, quoteExpr(p.Expr))}
	}
	lines := strings.Split(strings.TrimRight(p.Doc, "\n"), "\n")
	for i, line := range lines {
		// jennifer emits lines starting with a comment marker verbatim.
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			lines[i] = " " + line
		}
	}
	return lines
}

// quoteExpr renders expr as a Go string literal that fits on one line,
// preferring the raw form.
func quoteExpr(expr string) string {
	if strconv.CanBackquote(expr) {
		return "`" + expr + "`"
	}
	return strconv.Quote(expr)
}
