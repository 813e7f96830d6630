package matcher

import (
	"fmt"
	"io"
)

// Printer writes the path of every entry it evaluates to its output sink,
// one per line, and always matches. It backs the -print flag and the
// implicit print action appended to expressions without side effects.
type Printer struct {
	output io.Writer
}

// NewPrinter creates a print action writing to the given sink.
func NewPrinter(output io.Writer) *Printer {
	return &Printer{output: output}
}

// Matches implements Matcher.
func (m *Printer) Matches(entry Entry) bool {
	fmt.Fprintln(m.output, entry.Path)

	return true
}

// HasSideEffects implements Matcher.
func (m *Printer) HasSideEffects() bool {
	return true
}
