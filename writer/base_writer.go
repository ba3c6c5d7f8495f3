package writer

import (
	"bytes"
	"fmt"
)

// TextWriter is a buffer with printf style helpers.
type TextWriter struct {
	bytes.Buffer
}

func (w *TextWriter) Line() {
	w.W("\n")
}

func (w *TextWriter) W(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(&w.Buffer, format, args...)
}

// Ln writes a formatted line.
func (w *TextWriter) Ln(format string, args ...interface{}) {
	w.W(format, args...)
	w.Line()
}
