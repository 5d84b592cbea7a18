// Package stream runs a pattern over line-oriented input.
//
// Lines are read with a bounded buffer, so arbitrarily large inputs are
// processed in constant memory as long as no single line exceeds
// Config.MaxLineSize.
//
//	file, _ := os.Open("app.log")
//	defer file.Close()
//
//	err := stream.Lines(file, matcher, func(l stream.Line) bool {
//	    fmt.Printf("%d: %s\n", l.Number, l.Text)
//	    return true // continue
//	})
package stream

import (
	"bufio"
	"fmt"
	"io"
)

// Tester reports whether a line contains a match.
type Tester interface {
	Test(text string) (bool, error)
}

// Line is one matching input line.
type Line struct {
	// Number is the 1-based line number within the input.
	Number int
	// Text is the line without its terminating newline.
	Text string
}

// Config configures line scanning.
type Config struct {
	// MaxLineSize is the longest line accepted, in bytes.
	// Default: 1MB.
	MaxLineSize int
}

// DefaultConfig returns a Config with MaxLineSize set to 1MB.
func DefaultConfig() Config {
	return Config{MaxLineSize: 1024 * 1024}
}

// ErrBufferTooSmall is returned when Config.MaxLineSize is negative.
type ErrBufferTooSmall struct {
	Requested int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("stream: max line size %d too small", e.Requested)
}

// Validate validates the Config.
func (c Config) Validate() error {
	if c.MaxLineSize < 0 {
		return ErrBufferTooSmall{Requested: c.MaxLineSize}
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	if c.MaxLineSize == 0 {
		c.MaxLineSize = DefaultConfig().MaxLineSize
	}
	return c
}

// Lines calls fn for every line of r that t matches, in order, until fn
// returns false or the input ends.
func Lines(r io.Reader, t Tester, fn func(Line) bool) error {
	return LinesConfig(r, DefaultConfig(), t, fn)
}

// LinesConfig is Lines with an explicit Config.
func LinesConfig(r io.Reader, cfg Config, t Tester, fn func(Line) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.ApplyDefaults()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, cfg.MaxLineSize)), cfg.MaxLineSize)

	number := 0
	for sc.Scan() {
		number++
		text := sc.Text()
		ok, err := t.Test(text)
		if err != nil {
			return fmt.Errorf("stream: line %d: %w", number, err)
		}
		if ok && !fn(Line{Number: number, Text: text}) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("stream: line %d: %w", number+1, err)
	}
	return nil
}
