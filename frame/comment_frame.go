package frame

import (
	"bytes"
)

type commentFrame struct {
	prefix  string
	version string
}

func (f *commentFrame) Frame(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header(f.prefix, f.version))
	buf.WriteString("\n")
	buf.Write(data)
	return buf.Bytes(), nil
}

// Header is the generated-code marker line, e.g. "// Code generated by aconfig v0.1.0. DO NOT EDIT.".
func Header(prefix, version string) string {
	s := prefix + " Code generated by aconfig"
	if version != "" {
		s += " " + version
	}
	return s + ". DO NOT EDIT.\n"
}

func NewCommentFrame(prefix, version string) Framer {
	return &commentFrame{prefix: prefix, version: version}
}
