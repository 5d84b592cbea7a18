package fluentrx

import (
	"fmt"
	"io"

	"github.com/KromDaniel/fluentrx/replace"
	"github.com/KromDaniel/fluentrx/stream"
)

// Compile returns the matcher for b's pattern and flags. The matcher is
// built on first use and reused by every later call on the same builder.
func (b *Builder) Compile() (Matcher, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.once.Do(func() {
		pattern := b.Pattern()
		m, err := b.Engine().Compile(pattern, b.flags)
		if err != nil {
			b.compileErr = fmt.Errorf("fluentrx: compile %q: %w", pattern, err)
			return
		}
		b.matcher = m
	})
	return b.matcher, b.compileErr
}

// MustCompile is like Compile but panics on error.
func (b *Builder) MustCompile() Matcher {
	m, err := b.Compile()
	if err != nil {
		panic(err)
	}
	return m
}

// Search returns the leftmost match in text, or nil if there is none.
func (b *Builder) Search(text string) (*Match, error) {
	m, err := b.Compile()
	if err != nil {
		return nil, err
	}
	return m.Search(text)
}

// MatchStart returns the match that begins at the start of text, or nil.
func (b *Builder) MatchStart(text string) (*Match, error) {
	m, err := b.Compile()
	if err != nil {
		return nil, err
	}
	return m.MatchStart(text)
}

// FindAll returns the text of every non-overlapping match, left to right.
// It returns an empty slice when nothing matches.
func (b *Builder) FindAll(text string) ([]string, error) {
	m, err := b.Compile()
	if err != nil {
		return nil, err
	}
	return m.FindAll(text)
}

// Replace substitutes repl for every match. repl is inserted literally.
func (b *Builder) Replace(text, repl string) (string, error) {
	m, err := b.Compile()
	if err != nil {
		return "", err
	}
	return m.ReplaceAll(text, repl)
}

// ReplaceTemplate substitutes an expansion of tmpl for every match. The
// template may reference the whole match as $0 and groups as $n or ${n};
// $$ is a literal dollar sign.
func (b *Builder) ReplaceTemplate(text, tmpl string) (string, error) {
	m, err := b.Compile()
	if err != nil {
		return "", err
	}
	t, err := replace.Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("fluentrx: %w", err)
	}
	if t.MaxGroup() > m.NumGroups() {
		return "", fmt.Errorf("fluentrx: template references group %d but pattern has %d", t.MaxGroup(), m.NumGroups())
	}
	return m.ReplaceAllFunc(text, func(match *Match) string {
		return t.Expand(func(i int) string {
			if i == 0 {
				return match.Text
			}
			return match.Group(i)
		})
	})
}

// Split slices text around each match.
func (b *Builder) Split(text string) ([]string, error) {
	m, err := b.Compile()
	if err != nil {
		return nil, err
	}
	return m.Split(text)
}

// Test reports whether text contains a match.
func (b *Builder) Test(text string) (bool, error) {
	m, err := b.Compile()
	if err != nil {
		return false, err
	}
	return m.Test(text)
}

// ScanLines reads r line by line and calls fn for each line containing a
// match, stopping early when fn returns false.
func (b *Builder) ScanLines(r io.Reader, fn func(stream.Line) bool) error {
	m, err := b.Compile()
	if err != nil {
		return err
	}
	return stream.Lines(r, m, fn)
}

// Filter returns a reader yielding only the lines of r that contain a match.
func (b *Builder) Filter(r io.Reader) (io.Reader, error) {
	m, err := b.Compile()
	if err != nil {
		return nil, err
	}
	return stream.Filter(r, m), nil
}
