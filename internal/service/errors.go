package service

import (
	"errors"
	"strings"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	KindUnclassified Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindValidation
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConstraint:
		return "constraint"
	default:
		return "unclassified"
	}
}

// Error is the only error type services hand back to handlers.
// Messages are safe to show to clients; Err is for logs only.
type Error struct {
	Kind     Kind
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if len(e.Messages) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Messages, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrNotFound        = &Error{Kind: KindNotFound}
)

func validationError(msgs ...string) *Error {
	return &Error{Kind: KindValidation, Messages: msgs}
}

func constraintError(err error, msgs ...string) *Error {
	return &Error{Kind: KindConstraint, Messages: msgs, Err: err}
}

func unclassified(err error) *Error {
	return &Error{Kind: KindUnclassified, Err: err}
}

// KindOf returns the kind of err, KindUnclassified for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}
