// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping: validation problems map
// to 400, missing records to 404, relay/webhook failures to a one-time
// user message, store failures to a generic 500.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindTransport
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	case KindStore:
		return "store"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Transport(msg string, err error) error {
	return &Error{Kind: KindTransport, Msg: msg, Err: err}
}

func Store(msg string, err error) error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}

func kindOf(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsValidation(err error) bool { return kindOf(err, KindValidation) }
func IsNotFound(err error) bool   { return kindOf(err, KindNotFound) }
func IsTransport(err error) bool  { return kindOf(err, KindTransport) }
func IsStore(err error) bool      { return kindOf(err, KindStore) }
