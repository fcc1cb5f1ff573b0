package types

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so transports can map it to a fixed,
// non-leaking client message. Raw upstream detail stays in server logs.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidInput marks a request the caller can fix.
	KindInvalidInput
	// KindUpstreamFailure marks a failed call to the model provider.
	KindUpstreamFailure
	// KindPersistenceFailure marks a failed durable-store insert.
	KindPersistenceFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindUpstreamFailure:
		return "upstream failure"
	case KindPersistenceFailure:
		return "persistence failure"
	default:
		return "unknown"
	}
}

// Error is a classified service error wrapping its cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// E constructs a classified error.
func E(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the classification of err, or KindUnknown when err is
// not a classified error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
