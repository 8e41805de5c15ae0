// Package flaterrors joins errors without nesting them.
package flaterrors

import "strings"

// Join returns an error wrapping every non-nil error in errs.
// Errors that are themselves joined errors are flattened, so the result never
// contains nested joins. Join returns nil if every error is nil.
//
// The message is the messages of the errors separated by ": ", which reads like
// a chain of fmt.Errorf("%w") wrapping when the cause is passed first:
//
//	flaterrors.Join(err, errReadingConfig) // "open forge.yaml: no such file: reading config"
func Join(errs ...error) error {
	flat := make([]error, 0, len(errs))
	for _, err := range errs {
		flat = appendFlat(flat, err)
	}

	if len(flat) == 0 {
		return nil
	}

	return &joinError{errs: flat}
}

func appendFlat(dst []error, err error) []error {
	if err == nil {
		return dst
	}

	if joined, ok := err.(*joinError); ok {
		return append(dst, joined.errs...)
	}

	return append(dst, err)
}

type joinError struct {
	errs []error
}

func (e *joinError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ": ")
}

func (e *joinError) Unwrap() []error {
	return e.errs
}
