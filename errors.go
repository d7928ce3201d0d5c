package dcpe

import (
	"errors"
	"fmt"

	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks against package-level failures.
// All but ErrClientClosed and ErrKeyProviderLookup mirror a crypto.Kind
// (see internal/crypto/errors.go); wrapError below keeps them in sync with
// whatever kind a crypto.Error carries.
var (
	// ErrInvalidConfiguration is returned when client construction is given
	// contradictory or incomplete options.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidKey is returned when key material is missing, too short,
	// or has a zero scaling factor.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidInput is returned when a caller-supplied value fails
	// validation (bad header bytes, non-positive approximation factor, a
	// deterministic ciphertext shorter than the minimum frame).
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncrypt is returned when an encryption operation fails for a
	// reason other than invalid input (e.g. CSPRNG exhaustion).
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt is returned when an authentication hash or AEAD tag fails
	// to verify.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrOverflow is returned when a vector ciphertext coordinate is
	// non-finite after scaling and noise.
	ErrOverflow = errors.New("overflow")

	// ErrSerialization is returned when a wire-format blob cannot be
	// encoded or decoded.
	ErrSerialization = errors.New("serialization failed")

	// ErrClientClosed is returned when an operation is attempted on a
	// Client after Close.
	ErrClientClosed = errors.New("client has been closed")

	// ErrKeyProviderLookup is returned when a KeyProvider or
	// KeyProviderRegistry fails to produce key material.
	ErrKeyProviderLookup = errors.New("key provider lookup failed")
)

var kindSentinels = map[crypto.Kind]error{
	crypto.KindInvalidConfiguration: ErrInvalidConfiguration,
	crypto.KindInvalidKey:           ErrInvalidKey,
	crypto.KindInvalidInput:         ErrInvalidInput,
	crypto.KindEncrypt:              ErrEncrypt,
	crypto.KindDecrypt:              ErrDecrypt,
	crypto.KindVectorEncrypt:        ErrEncrypt,
	crypto.KindVectorDecrypt:        ErrDecrypt,
	crypto.KindOverflow:             ErrOverflow,
	crypto.KindSerialization:        ErrSerialization,
}

// newKeyProviderError and wrapKeyProviderError build the error a KeyProvider
// implementation returns for a lookup failure. Per §7's condition→kind
// table, "key-provider lookup failure" maps onto the closed InvalidInput
// kind, so these build a *crypto.Error carrying that Kind and pass it
// through wrapError: errors.Is(err, ErrInvalidInput) holds on a
// KeyProvider's return value directly, and the %w chain to
// ErrKeyProviderLookup keeps errors.Is(err, ErrKeyProviderLookup) working
// as well.
func newKeyProviderError(format string, args ...any) error {
	return wrapError(&crypto.Error{
		Kind: crypto.KindInvalidInput,
		Rich: fmt.Errorf("%w: %s", ErrKeyProviderLookup, fmt.Sprintf(format, args...)),
	})
}

func wrapKeyProviderError(cause error, format string, args ...any) error {
	return wrapError(&crypto.Error{
		Kind: crypto.KindInvalidInput,
		Rich: fmt.Errorf("%w: %s: %w", ErrKeyProviderLookup, fmt.Sprintf(format, args...), cause),
	})
}

// wrapError translates an internal/crypto error into one matching a
// package-level sentinel, so callers can write errors.Is(err,
// dcpe.ErrDecrypt) instead of importing the internal package to inspect its
// Kind. Non-crypto errors (and nil) pass through unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var cerr *crypto.Error
	if errors.As(err, &cerr) {
		if sentinel, ok := kindSentinels[cerr.Kind]; ok {
			return &wrappedError{sentinel: sentinel, cause: err}
		}
	}
	return err
}

// wrappedError pairs a package-level sentinel with the original
// internal/crypto error so both errors.Is(err, dcpe.ErrX) and %w-unwrapping
// to the original diagnostic message work.
type wrappedError struct {
	sentinel error
	cause    error
}

func (e *wrappedError) Error() string { return e.cause.Error() }
func (e *wrappedError) Unwrap() error { return e.cause }
func (e *wrappedError) Is(target error) bool {
	return target == e.sentinel
}
