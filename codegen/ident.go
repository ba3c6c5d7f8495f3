// Package codegen contains helpers shared by the flag code generators.
package codegen

import (
	"regexp"
	"strings"

	"github.com/swipe-io/aconfig/internal/errors"
)

var nameIdentRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// IsValidNameIdent reports whether s is a flag name or a package segment.
func IsValidNameIdent(s string) bool {
	return nameIdentRe.MatchString(s)
}

// IsValidPackageIdent reports whether every dot-separated segment of s is a
// valid name identifier.
func IsValidPackageIdent(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !IsValidNameIdent(part) {
			return false
		}
	}
	return true
}

// CreateDeviceConfigIdent returns the runtime configuration key of a flag.
// Inputs are validated when the cache is built, so a bad identifier here
// yields an assertion failure.
func CreateDeviceConfigIdent(pkg, name string) (string, error) {
	if !IsValidPackageIdent(pkg) {
		return "", errors.AssertionFailedf("bad package %q", pkg)
	}
	if !IsValidNameIdent(name) {
		return "", errors.AssertionFailedf("bad flag name %q", name)
	}
	return pkg + "." + name, nil
}

// ToASCIIUpper upper-cases ASCII letters only; all other bytes are kept.
func ToASCIIUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
