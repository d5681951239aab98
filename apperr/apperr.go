// Package apperr defines the domain error taxonomy shared by the service
// layer and the HTTP boundary.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInvalid marks malformed or missing input; the operation was not
	// attempted.
	KindInvalid Kind = iota + 1
	// KindNotFound marks a referenced entity id that does not exist.
	KindNotFound
	// KindConflict marks a delete blocked by existing references.
	KindConflict
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func Invalid(format string, args ...any) error {
	return &Error{Kind: KindInvalid, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the taxonomy kind of err, or 0 if err is not a domain
// error (i.e. a store or programming error).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
