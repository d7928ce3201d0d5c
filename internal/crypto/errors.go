package crypto

import (
	"errors"
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// Kind is the closed set of failure categories every operation in this
// package can fail with. There is no "unknown" or catch-all kind: every
// error path picks exactly one of these before returning.
type Kind string

const (
	KindInvalidConfiguration Kind = "invalid_configuration"
	KindInvalidKey           Kind = "invalid_key"
	KindInvalidInput         Kind = "invalid_input"
	KindEncrypt              Kind = "encrypt"
	KindDecrypt              Kind = "decrypt"
	KindVectorEncrypt        Kind = "vector_encrypt"
	KindVectorDecrypt        Kind = "vector_decrypt"
	KindOverflow             Kind = "overflow"
	KindSerialization        Kind = "serialization"
)

// code maps each Kind to a stable string code recorded on the underlying
// agilira/go-errors rich error, for audit logging that survives message
// wording changes.
func (k Kind) code() goerrors.ErrorCode {
	switch k {
	case KindInvalidConfiguration:
		return "DCPE_INVALID_CONFIGURATION"
	case KindInvalidKey:
		return "DCPE_INVALID_KEY"
	case KindInvalidInput:
		return "DCPE_INVALID_INPUT"
	case KindEncrypt:
		return "DCPE_ENCRYPT"
	case KindDecrypt:
		return "DCPE_DECRYPT"
	case KindVectorEncrypt:
		return "DCPE_VECTOR_ENCRYPT"
	case KindVectorDecrypt:
		return "DCPE_VECTOR_DECRYPT"
	case KindOverflow:
		return "DCPE_OVERFLOW"
	case KindSerialization:
		return "DCPE_SERIALIZATION"
	default:
		return "DCPE_UNKNOWN"
	}
}

// Error is the single error type returned by every exported operation in
// this package. It never carries key material, only the condition name.
type Error struct {
	Kind Kind
	// Rich is the coded error backing this failure, suitable for audit
	// logs that key on a stable string rather than Error()'s prose.
	Rich error
}

func (e *Error) Error() string {
	return e.Rich.Error()
}

// Unwrap exposes the underlying rich error so errors.As/errors.Is reach it.
func (e *Error) Unwrap() error {
	return e.Rich
}

// Is reports whether target is the sentinel for e's Kind, so callers can
// write errors.Is(err, crypto.ErrDecrypt) instead of switching on Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && target == sentinel
}

// newError constructs an Error of the given kind with a fresh rich error.
func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Rich: goerrors.New(kind.code(), message)}
}

// wrapError constructs an Error of the given kind wrapping a lower-level
// cause (e.g. an AEAD failure from the standard library).
func wrapError(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Rich: goerrors.Wrap(cause, kind.code(), message)}
}

// Sentinel errors, one per Kind, for errors.Is checks against a fixed
// target rather than a message or a Kind switch.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidKey           = errors.New("invalid key")
	ErrInvalidInput         = errors.New("invalid input")
	ErrEncrypt              = errors.New("encrypt failed")
	ErrDecrypt              = errors.New("decrypt failed")
	ErrVectorEncrypt        = errors.New("vector encrypt failed")
	ErrVectorDecrypt        = errors.New("vector decrypt failed")
	ErrOverflow             = errors.New("overflow")
	ErrSerialization        = errors.New("serialization failed")
)

var sentinels = map[Kind]error{
	KindInvalidConfiguration: ErrInvalidConfiguration,
	KindInvalidKey:           ErrInvalidKey,
	KindInvalidInput:         ErrInvalidInput,
	KindEncrypt:              ErrEncrypt,
	KindDecrypt:              ErrDecrypt,
	KindVectorEncrypt:        ErrVectorEncrypt,
	KindVectorDecrypt:        ErrVectorDecrypt,
	KindOverflow:             ErrOverflow,
	KindSerialization:        ErrSerialization,
}

// fErrorf is a helper for constructing a *Error with a formatted message,
// used where the message needs interpolated values (e.g. observed lengths).
func fErrorf(kind Kind, format string, args ...any) *Error {
	return newError(kind, fmt.Sprintf(format, args...))
}
