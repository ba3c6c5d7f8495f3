// Package frame wraps generated file contents in a per-language header.
package frame

import (
	"path/filepath"
)

type Framer interface {
	Frame(data []byte) ([]byte, error)
}

// NewFrame picks the framer for filename by extension. Without useDoNotEdit
// the contents are returned as is.
func NewFrame(version string, filename string, useDoNotEdit bool) Framer {
	if !useDoNotEdit {
		return NewBytesFrame()
	}
	ext := filepath.Ext(filename)
	switch ext {
	default:
		return NewBytesFrame()
	case ".java", ".kt":
		return NewCommentFrame("//", version)
	}
}
