package fluentrx

import (
	"bytes"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(fs afero.Fs) Options {
	return Options{
		Package:    "patterns",
		OutputFile: filepath.Join("gen", "patterns.go"),
		Fs:         fs,
		Patterns: []NamedPattern{
			{Name: "email", Builder: Regex.Words().Then("@").Words().Then(".").Words()},
			{Name: "Greeting", Builder: Regex.StartsWith("hello").IgnoreCase(), Doc: "Greeting matches a salutation."},
		},
	}
}

func TestOptionsValidate(t *testing.T) {
	valid := testOptions(nil)
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no package", func(o *Options) { o.Package = "" }},
		{"no output", func(o *Options) { o.OutputFile = "" }},
		{"no patterns", func(o *Options) { o.Patterns = nil }},
		{"no name", func(o *Options) { o.Patterns[0].Name = "" }},
		{"nil builder", func(o *Options) { o.Patterns[0].Builder = nil }},
		{"errored builder", func(o *Options) { o.Patterns[0].Builder = Regex.OneOrMore() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(nil)
			opts.Patterns = append([]NamedPattern(nil), opts.Patterns...)
			tt.modify(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestGenerateSource(t *testing.T) {
	src, err := GenerateSource(testOptions(nil))
	require.NoError(t, err)

	s := string(src)
	assert.True(t, strings.HasPrefix(s, "// Code generated by fluentrx. DO NOT EDIT.\n"))
	assert.Contains(t, s, "package patterns")
	assert.Contains(t, s, `regexp.MustCompile("\\w+@\\w+\\.\\w+")`)
	assert.Contains(t, s, `regexp.MustCompile("(?i)^hello")`)
	assert.Contains(t, s, "// Email matches `\\w+@\\w+\\.\\w+`.")
	assert.Contains(t, s, "// Greeting matches a salutation.")
	assert.Less(t, strings.Index(s, "Email"), strings.Index(s, "Greeting"))
}

func TestGenerateSourceErrors(t *testing.T) {
	opts := testOptions(nil)
	opts.Patterns = []NamedPattern{{Name: "bad-name", Builder: Regex.Digit()}}
	_, err := GenerateSource(opts)
	assert.Error(t, err)

	opts.Patterns = []NamedPattern{{Name: "a", Builder: Regex.Digit()}, {Name: "A", Builder: Regex.Word()}}
	_, err = GenerateSource(opts)
	assert.Error(t, err, "names collide once exported")

	opts.Patterns = []NamedPattern{{Name: "huge", Builder: Regex.Digit().Exactly(5000)}}
	_, err = GenerateSource(opts)
	assert.Error(t, err, "pattern the engine rejects")
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := testOptions(fs)

	var log bytes.Buffer
	opts.Verbose = true
	opts.LogOutput = &log

	require.NoError(t, Generate(opts))

	written, err := afero.ReadFile(fs, opts.OutputFile)
	require.NoError(t, err)
	want, err := GenerateSource(opts)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(written))

	assert.Contains(t, log.String(), "[fluentrx] === Email ===")
	assert.Contains(t, log.String(), "Wrote "+opts.OutputFile)

	require.NoError(t, CheckGenerated(opts))
}

func TestGenerateQuiet(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := testOptions(fs)

	var log bytes.Buffer
	opts.LogOutput = &log

	require.NoError(t, Generate(opts))
	assert.Empty(t, log.String())
}

func TestGenerateInvalidOptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := testOptions(fs)
	opts.OutputFile = ""

	err := Generate(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")
}

func TestCheckGenerated(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := testOptions(fs)

	assert.ErrorIs(t, CheckGenerated(opts), ErrNotGenerated, "missing file")

	require.NoError(t, Generate(opts))
	require.NoError(t, CheckGenerated(opts))

	opts.Patterns[0].Builder = opts.Patterns[0].Builder.Optional()
	assert.ErrorIs(t, CheckGenerated(opts), ErrNotGenerated, "stale file")
}

func TestGenerateSourceMultilineLiteral(t *testing.T) {
	opts := testOptions(nil)
	opts.Patterns = []NamedPattern{{Name: "odd", Builder: Regex.Then("a\n*/b")}}

	src, err := GenerateSource(opts)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "patterns.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)
	assert.Contains(t, string(src), `// Odd matches "a\n\\*/b".`)
}
