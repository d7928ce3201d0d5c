package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

// EncryptionKey is an opaque symmetric key of at least EncryptionKeySize
// bytes. Callers own its lifetime; this package never logs its contents.
type EncryptionKey []byte

// Equal reports whether two keys hold the same bytes.
func (k EncryptionKey) Equal(other EncryptionKey) bool {
	return hmac.Equal(k, other)
}

// ScalingFactor is the non-negative real number a plaintext vector's
// coordinates are multiplied by before noise is added. It is distinct from
// the approximation factor, which is a runtime parameter, not part of the
// key.
type ScalingFactor float64

// validate rejects the one fatal condition for a scaling factor: zero.
func (s ScalingFactor) validate() error {
	if s == 0 {
		return newError(KindInvalidKey, "scaling factor must not be zero")
	}
	return nil
}

// VectorEncryptionKey is the key material for DCPE vector encryption: a
// scaling factor paired with a keyed-operation key used for shuffling,
// noise generation, and authentication.
type VectorEncryptionKey struct {
	Scaling ScalingFactor
	Key     EncryptionKey
}

// DeriveFromSecret derives a VectorEncryptionKey for a tenant and derivation
// path from a master secret, per §4.B:
//
//	HMAC-SHA-512(secret, "{tenantID}-{derivationPath}") -> 64 bytes
//
// the first 35 bytes of which are interpreted by UnsafeBytesToKey.
func DeriveFromSecret(secret []byte, tenantID, derivationPath string) (VectorEncryptionKey, error) {
	mac := hmac.New(sha512.New, secret)
	fmt.Fprintf(mac, "%s-%s", tenantID, derivationPath)
	digest := mac.Sum(nil)
	if len(digest) != DerivedSecretSize {
		return VectorEncryptionKey{}, newError(KindInvalidKey, "unexpected HMAC-SHA-512 digest size")
	}
	return UnsafeBytesToKey(digest[:unsafeBytesToKeyMinLen])
}

// UnsafeBytesToKey reinterprets raw bytes as a VectorEncryptionKey: the
// first 3 bytes (big-endian, zero-extended to 32 bits) become the scaling
// factor, and the next 32 bytes become the key. It is "unsafe" in the sense
// that it performs no key-strength validation beyond the length check —
// callers pass already-derived or already-random bytes.
func UnsafeBytesToKey(b []byte) (VectorEncryptionKey, error) {
	if len(b) < unsafeBytesToKeyMinLen {
		return VectorEncryptionKey{}, fErrorf(KindInvalidKey,
			"key material too short: got %d bytes, want at least %d", len(b), unsafeBytesToKeyMinLen)
	}

	var scaleBytes [4]byte
	copy(scaleBytes[1:], b[0:3])
	scaling := ScalingFactor(binary.BigEndian.Uint32(scaleBytes[:]))

	key := make(EncryptionKey, EncryptionKeySize)
	copy(key, b[3:3+EncryptionKeySize])

	vk := VectorEncryptionKey{Scaling: scaling, Key: key}
	if err := vk.Scaling.validate(); err != nil {
		return VectorEncryptionKey{}, err
	}
	return vk, nil
}
