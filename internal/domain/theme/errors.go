// Package theme holds the domain types shared by every dark/light theme source.
package theme

import (
	"errors"
	"fmt"
)

// Kind classifies why a theme source could not answer or apply a request.
type Kind int

const (
	// KindIO covers process-spawn, bus and registry access failures.
	KindIO Kind = iota + 1
	// KindDecode covers malformed output from a native read.
	KindDecode
	// KindUnsupported marks an operation the source has no way to perform.
	KindUnsupported
)

// Sentinels matched by errors.Is against any *Error of the same Kind.
var (
	ErrIO          = errors.New("theme source i/o failure")
	ErrDecode      = errors.New("malformed theme value")
	ErrUnsupported = errors.New("operation not supported by theme source")
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindDecode:
		return ErrDecode
	case KindUnsupported:
		return ErrUnsupported
	default:
		return nil
	}
}

// Error is the single error type every theme source returns.
type Error struct {
	Kind   Kind
	Source string
	Op     string
	Err    error
}

// NewError builds an *Error. err may be nil.
func NewError(kind Kind, source, op string, err error) *Error {
	return &Error{Kind: kind, Source: source, Op: op, Err: err}
}

// IOError wraps err as a KindIO failure.
func IOError(source, op string, err error) *Error {
	return NewError(KindIO, source, op, err)
}

// DecodeError wraps err as a KindDecode failure.
func DecodeError(source, op string, err error) *Error {
	return NewError(KindDecode, source, op, err)
}

// Unsupported reports that source cannot perform op.
func Unsupported(source, op string) *Error {
	return NewError(KindUnsupported, source, op, nil)
}

func (e *Error) Error() string {
	reason := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		reason = s.Error()
	}
	msg := e.Source + " " + e.Op + ": " + reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// Invert turns an IsDark result into an IsLight result, passing err through unchanged.
func Invert(dark bool, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return !dark, nil
}
