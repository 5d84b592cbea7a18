package fluentrx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/KromDaniel/fluentrx/internal/codegen"
	"github.com/KromDaniel/fluentrx/internal/compiler"
)

// NamedPattern pairs a builder with the Go variable it is generated into.
type NamedPattern struct {
	// Name is the variable name. Its first letter is upper-cased so the
	// variable is exported.
	Name string

	// Builder is the expression to generate. Its flags are emitted as an
	// inline group; its engine is ignored.
	Builder *Builder

	// Doc optionally replaces the generated doc comment.
	Doc string
}

// Options configures Go source generation.
type Options struct {
	// Package is the Go package name for the generated code
	Package string

	// OutputFile is the path where generated code will be written.
	// GenerateSource ignores it.
	OutputFile string

	// Patterns are declared in order, one variable each
	Patterns []NamedPattern

	// Fs is the filesystem written to. Nil means the OS filesystem.
	Fs afero.Fs

	// Verbose logs each pattern and its analysis
	Verbose bool

	// LogOutput receives verbose output. Nil means stderr.
	LogOutput io.Writer
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return o.validatePatterns()
}

func (o Options) validatePatterns() error {
	if len(o.Patterns) == 0 {
		return fmt.Errorf("patterns cannot be empty")
	}
	for i, p := range o.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern %d: name cannot be empty", i)
		}
		if p.Builder == nil {
			return fmt.Errorf("pattern %q: builder cannot be nil", p.Name)
		}
		if err := p.Builder.Err(); err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}
	return nil
}

// Generate writes a Go file declaring a regexp.MustCompile variable for
// every pattern.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	src, err := generate(opts)
	if err != nil {
		return err
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if dir := filepath.Dir(opts.OutputFile); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := afero.WriteFile(fs, opts.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.OutputFile, err)
	}
	newLogger(opts).Log("Wrote %s (%d bytes)", opts.OutputFile, len(src))
	return nil
}

// GenerateSource returns the Go source Generate would write.
func GenerateSource(opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("invalid options: package cannot be empty")
	}
	if err := opts.validatePatterns(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return generate(opts)
}

func generate(opts Options) ([]byte, error) {
	logger := newLogger(opts)

	cfg := codegen.Config{Package: opts.Package}
	for _, p := range opts.Patterns {
		expr := p.Builder.Flags().InlinePrefix() + p.Builder.Pattern()
		name := codegen.UpperFirst(p.Name)

		logger.Section(name)
		analysis, err := compiler.Analyze(expr)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		logger.LogAnalysis(analysis)

		cfg.Patterns = append(cfg.Patterns, codegen.Pattern{Name: name, Expr: expr, Doc: p.Doc})
	}

	src, err := codegen.Source(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}
	return src, nil
}

func newLogger(opts Options) *compiler.Logger {
	logger := compiler.NewLogger(opts.Verbose)
	logger.SetOutput(opts.LogOutput)
	return logger
}

// ErrNotGenerated is returned by CheckGenerated when the file on disk
// differs from what Generate would write.
var ErrNotGenerated = errors.New("generated file is out of date")

// CheckGenerated compares opts.OutputFile with freshly generated source.
// It returns ErrNotGenerated, wrapped, when the file is missing or stale.
func CheckGenerated(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	want, err := generate(opts)
	if err != nil {
		return err
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	got, err := afero.ReadFile(fs, opts.OutputFile)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", opts.OutputFile, ErrNotGenerated)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.OutputFile, err)
	}
	if string(got) != string(want) {
		return fmt.Errorf("%s: %w", opts.OutputFile, ErrNotGenerated)
	}
	return nil
}
