package stream

import (
	"bufio"
	"bytes"
	"io"
)

// Filter returns an io.Reader that only outputs the lines of r that t
// matches. Lines are delimited by '\n', which is kept in the output. The
// newline is not part of the text passed to t.
//
// Example - keep only lines with an error code:
//
//	r := stream.Filter(input, matcher)
//	io.Copy(os.Stdout, r)
func Filter(r io.Reader, t Tester) io.Reader {
	return &filterReader{
		source: bufio.NewReader(r),
		t:      t,
	}
}

// filterReader implements io.Reader for Filter.
type filterReader struct {
	source *bufio.Reader
	t      Tester

	// Pending output: the current matching line.
	output      []byte
	outputStart int

	err error
}

func (r *filterReader) Read(p []byte) (n int, err error) {
	for r.outputStart == len(r.output) {
		if r.err != nil {
			return 0, r.err
		}
		r.next()
	}
	n = copy(p, r.output[r.outputStart:])
	r.outputStart += n
	return n, nil
}

// next loads the next matching line into the output buffer, or records the
// error that ends the stream.
func (r *filterReader) next() {
	r.output = r.output[:0]
	r.outputStart = 0

	line, err := r.source.ReadBytes('\n')
	if len(line) > 0 {
		ok, terr := r.t.Test(string(bytes.TrimSuffix(line, []byte{'\n'})))
		if terr != nil {
			r.err = terr
			return
		}
		if ok {
			r.output = append(r.output, line...)
		}
	}
	if err != nil {
		r.err = err
	}
}
