package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a pipeline failure. Fetch covers transport and
// non-success upstream responses, Parse covers bodies that do not
// contain a usable entry list, Write covers local filesystem failures.
type Kind string

const (
	KindFetch Kind = "fetch"
	KindParse Kind = "parse"
	KindWrite Kind = "write"
)

type Error struct {
	kind Kind
	err  error
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.kind, e.err)
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NewFetchError(err error) *Error {
	return &Error{
		kind: KindFetch,
		err:  err,
	}
}

func NewParseError(err error) *Error {
	return &Error{
		kind: KindParse,
		err:  err,
	}
}

func NewWriteError(err error) *Error {
	return &Error{
		kind: KindWrite,
		err:  err,
	}
}

// IsKind reports whether any error in err's chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind == kind
	}

	return false
}
