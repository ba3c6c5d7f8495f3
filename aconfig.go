// Package aconfig holds the flag model consumed by the code generators:
// flag states, permissions, cache items and the files produced from them.
package aconfig

import (
	"fmt"
	"strings"
)

// FlagState is the compile-time default of a flag.
type FlagState int

const (
	Enabled FlagState = iota + 1
	Disabled
)

func (s FlagState) String() string {
	switch s {
	case Enabled:
		return "ENABLED"
	case Disabled:
		return "DISABLED"
	}
	return fmt.Sprintf("FlagState(%d)", int(s))
}

func (s FlagState) IsValid() bool {
	return s == Enabled || s == Disabled
}

func (s FlagState) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid flag state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *FlagState) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "ENABLED":
		*s = Enabled
	case "DISABLED":
		*s = Disabled
	default:
		return fmt.Errorf("unknown flag state %q", string(text))
	}
	return nil
}

// Permission tells whether a flag can be overridden at runtime.
type Permission int

const (
	ReadOnly Permission = iota + 1
	ReadWrite
)

func (p Permission) String() string {
	switch p {
	case ReadOnly:
		return "READ_ONLY"
	case ReadWrite:
		return "READ_WRITE"
	}
	return fmt.Sprintf("Permission(%d)", int(p))
}

func (p Permission) IsValid() bool {
	return p == ReadOnly || p == ReadWrite
}

func (p Permission) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid permission %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Permission) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "READ_ONLY":
		*p = ReadOnly
	case "READ_WRITE":
		*p = ReadWrite
	default:
		return fmt.Errorf("unknown permission %q", string(text))
	}
	return nil
}

// Item is a single flag declaration of a cache.
type Item struct {
	Namespace  string
	Name       string
	State      FlagState
	Permission Permission
}

// OutputFile is a generated file. Path is relative to the output directory.
type OutputFile struct {
	Path     string
	Contents []byte
}
