package java

import (
	"fmt"

	"github.com/swipe-io/aconfig/internal/errors"
)

// Error kinds. Match them with errors.Is.
var (
	ErrTemplateParse     = errors.New("template parse error")
	ErrTemplateRender    = errors.New("template render error")
	ErrContractViolation = errors.New("contract violation")
)

// GenerationError is returned by every failed generation. No files are
// produced alongside it.
type GenerationError struct {
	Package string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate java code for package %q: %v", e.Package, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newGenerationError(pkg string, err error) error {
	if _, ok := err.(*GenerationError); ok {
		return err
	}
	return &GenerationError{Package: pkg, Err: err}
}

func templateParseError(name string, err error) error {
	return errors.Mark(errors.Wrapf(err, "parse template %q", name), ErrTemplateParse)
}

func templateRenderError(name string, err error) error {
	return errors.Mark(errors.Wrapf(err, "render template %q", name), ErrTemplateRender)
}

func contractViolation(err error) error {
	return errors.Mark(err, ErrContractViolation)
}
