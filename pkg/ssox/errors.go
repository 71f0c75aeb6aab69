package ssox

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the client reports so callers never have to
// type-switch on whatever the transport or parser returned.
type Kind string

const (
	KindInvalidRequest Kind = "invalid_request"
	KindInvalidToken   Kind = "invalid_token"
	KindUpstream       Kind = "upstream_error"
	KindInternal       Kind = "internal_error"
)

// Error is the single error shape returned by this package.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrInvalidToken)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidRequest = &Error{Kind: KindInvalidRequest, Message: "ssox: invalid request"}
	ErrInvalidToken   = &Error{Kind: KindInvalidToken, Message: "ssox: invalid token"}
	ErrUpstream       = &Error{Kind: KindUpstream, Message: "ssox: identity provider error"}
)

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// AsError normalises err into an *Error. Errors that did not come from this
// package are reported as KindInternal with their original message.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
