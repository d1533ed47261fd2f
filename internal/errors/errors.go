// Package errors mirrors the parts of the stdlib and pkg/errors APIs the
// service uses, so call sites need a single import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return pkgerrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Combine joins errs and prefixes the result with message. Batch jobs use it to
// report every failed item at once; it returns nil when every item succeeded.
func Combine(message string, errs ...error) error {
	joined := stderrors.Join(errs...)
	if joined == nil {
		return nil
	}

	return pkgerrors.WithMessage(joined, message)
}

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
