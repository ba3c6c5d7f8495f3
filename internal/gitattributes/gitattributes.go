// Package gitattributes keeps a block of generated paths marked -diff in .gitattributes.
package gitattributes

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/swipe-io/aconfig/internal/errors"
)

const Filename = ".gitattributes"

var startGitAttrPattern = []byte("\n# /aconfig gen\n")
var endGitAttrPattern = []byte("# aconfig gen/\n")

// Generate replaces the aconfig block of wd/.gitattributes with diffExcludes,
// creating the file if needed. Paths are relative to wd.
func Generate(wd string, diffExcludes []string) error {
	gitAttributesPath := filepath.Join(wd, Filename)

	data, err := os.ReadFile(gitAttributesPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	buf := new(bytes.Buffer)

	start := bytes.Index(data, startGitAttrPattern)
	end := bytes.Index(data, endGitAttrPattern)

	switch {
	case start == -1 && end == -1:
		buf.Write(data)
	case start == -1 || end == -1 || end < start:
		return errors.Newf("%s: unbalanced aconfig gen block", gitAttributesPath)
	default:
		buf.Write(data[:start])
		buf.Write(data[end+len(endGitAttrPattern):])
	}

	excludes := make([]string, len(diffExcludes))
	for i, e := range diffExcludes {
		excludes[i] = filepath.ToSlash(e)
	}
	sort.Strings(excludes)

	buf.Write(startGitAttrPattern)
	for _, exclude := range excludes {
		buf.WriteString(exclude + " -diff\n")
	}
	buf.Write(endGitAttrPattern)

	return os.WriteFile(gitAttributesPath, buf.Bytes(), 0644)
}
