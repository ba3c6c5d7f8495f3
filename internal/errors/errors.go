// Package errors re-exports github.com/cockroachdb/errors and adds the
// collector used to report every failure of a multi-cache run at once.
package errors

import (
	"strings"

	crdb "github.com/cockroachdb/errors"
)

var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetailf  = crdb.WithDetailf
	Mark         = crdb.Mark
	Is           = crdb.Is
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	FlattenHints = crdb.FlattenHints
)

// Contract violations.
var (
	AssertionFailedf                 = crdb.AssertionFailedf
	NewAssertionErrorWithWrappedErrf = crdb.NewAssertionErrorWithWrappedErrf
	HasAssertionFailure              = crdb.HasAssertionFailure
)

type ErrorCollector struct {
	errors []error
}

func (ec *ErrorCollector) Errors() []error {
	return ec.errors
}

func (ec *ErrorCollector) Len() int {
	return len(ec.errors)
}

func (ec *ErrorCollector) Add(errs ...error) {
	for _, e := range errs {
		if e != nil {
			ec.errors = append(ec.errors, e)
		}
	}
}

// Err joins the collected errors into one, or returns nil when nothing was collected.
func (ec *ErrorCollector) Err() error {
	switch len(ec.errors) {
	case 0:
		return nil
	case 1:
		return ec.errors[0]
	}
	msgs := make([]string, len(ec.errors))
	for i, e := range ec.errors {
		msgs[i] = e.Error()
	}
	return crdb.WithSecondaryError(
		crdb.Newf("%d errors occurred:\n\t%s", len(ec.errors), strings.Join(msgs, "\n\t")),
		ec.errors[0],
	)
}

func MapErrors(errs []error, f func(error) error) []error {
	if len(errs) == 0 {
		return nil
	}
	newErrs := make([]error, len(errs))
	for i := range errs {
		newErrs[i] = f(errs[i])
	}
	return newErrs
}

// SourceErr attaches the path of the input file an error came from.
type SourceErr struct {
	error  error
	source string
}

func (w *SourceErr) Error() string {
	if w.source == "" {
		return w.error.Error()
	}
	return w.source + ": " + w.error.Error()
}

func (w *SourceErr) Unwrap() error {
	return w.error
}

func NoteSource(source string, e error) error {
	switch e.(type) {
	case nil:
		return nil
	case *SourceErr:
		return e
	default:
		return &SourceErr{error: e, source: source}
	}
}

func NoteSourceAll(source string, errs []error) []error {
	return MapErrors(errs, func(e error) error {
		return NoteSource(source, e)
	})
}
