package compiler

import (
	"regexp"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  string
	}{
		{"empty", nil, ""},
		{"single", []Node{CharClass{Digit}}, `\d`},
		{
			"email like",
			[]Node{
				Quantifier{Target: CharClass{Word}, Kind: OneOrMore},
				Literal{"@"},
				Quantifier{Target: CharClass{Word}, Kind: OneOrMore},
				Literal{"."},
				Quantifier{Target: CharClass{Word}, Kind: OneOrMore},
			},
			`\w+@\w+\.\w+`,
		},
		{
			"phone",
			[]Node{
				Quantifier{Target: CharClass{Digit}, Kind: Exact, Min: 3},
				Literal{"-"},
				Quantifier{Target: CharClass{Digit}, Kind: Exact, Min: 3},
				Literal{"-"},
				Quantifier{Target: CharClass{Digit}, Kind: Exact, Min: 4},
			},
			`\d{3}-\d{3}-\d{4}`,
		},
		{
			"adjacent literals are not merged",
			[]Node{Literal{"go"}, Quantifier{Target: Literal{"o"}, Kind: ZeroOrMore}, Literal{"al"}},
			"goo*al",
		},
		{
			"anchored",
			[]Node{Anchor{AnchorStart}, Literal{"Hello"}, CharClass{Whitespace}, Quantifier{Target: CharClass{Word}, Kind: OneOrMore}, Anchor{AnchorEnd}},
			`^Hello\s\w+$`,
		},
		{
			"groups recurse",
			[]Node{
				Group{[]Node{Quantifier{Target: CharClass{Digit}, Kind: OneOrMore}, Literal{"-"}, Quantifier{Target: CharClass{Digit}, Kind: OneOrMore}}},
				Literal{"="},
				Group{[]Node{Quantifier{Target: CharClass{Any}, Kind: OneOrMore}}},
			},
			`(\d+-\d+)=(.+)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.nodes)
			if got != tt.want {
				t.Errorf("Compile() = %q, want %q", got, tt.want)
			}
			if _, err := regexp.Compile(got); err != nil {
				t.Errorf("Compile() produced invalid syntax %q: %v", got, err)
			}
		})
	}
}

func TestCompileIsConcatenation(t *testing.T) {
	nodes := []Node{
		Literal{"a.b"},
		AnyOf{[]string{"x", "y"}},
		Quantifier{Target: Literal{"cd"}, Kind: Optional},
		NegatedCharClass{Letter},
		ExcludeFilter{Word, "_"},
	}

	want := ""
	for _, n := range nodes {
		want += n.Render()
	}
	if got := Compile(nodes); got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
	if got := Compile(nodes); got != want {
		t.Errorf("second Compile() = %q, want %q", got, want)
	}
}

func TestCountGroups(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  int
	}{
		{"none", []Node{Literal{"a"}, CharClass{Digit}}, 0},
		{"any of alternation is not capturing", []Node{AnyOf{[]string{"ab", "cd"}}}, 0},
		{"two groups", []Node{Group{[]Node{Literal{"a"}}}, Group{nil}}, 2},
		{"nested", []Node{Group{[]Node{Group{[]Node{Literal{"a"}}}}}}, 2},
		{"quantified group", []Node{Quantifier{Target: Group{[]Node{Literal{"a"}}}, Kind: Optional}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountGroups(tt.nodes); got != tt.want {
				t.Errorf("CountGroups() = %d, want %d", got, tt.want)
			}
			re := regexp.MustCompile(Compile(tt.nodes))
			if re.NumSubexp() != tt.want {
				t.Errorf("regexp NumSubexp() = %d, want %d", re.NumSubexp(), tt.want)
			}
		})
	}
}
