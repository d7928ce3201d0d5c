package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// AuthHash is a 32-byte HMAC-SHA-256 digest authenticating a vector
// ciphertext together with its scaling factor, approximation factor, and
// IV. Equality MUST be constant-time (§3).
type AuthHash [AuthHashSize]byte

// Equal performs a constant-time comparison, required so that a wrong-key
// and a wrong-ciphertext decrypt failure are indistinguishable in timing
// (§7).
func (h AuthHash) Equal(other AuthHash) bool {
	return hmac.Equal(h[:], other[:])
}

// putFloat32LE appends the little-endian IEEE-754 binary32 encoding of f to
// buf. The specification's authHash formula is written with "BE(f32(...))"
// notation but its own clarifying sentence fixes the wire byte order to
// little-endian "matching the reference" — this implementation follows
// that clarifying sentence (see DESIGN.md Open Questions).
func putFloat32LE(buf []byte, f float64) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(f)))
	return append(buf, b[:]...)
}

// computeAuthHash implements §4.G:
//
//	HMAC-SHA-256(vk.k, f32(vk.s) || f32(a) || iv || concat_i f32(ct[i]))
func computeAuthHash(vk VectorEncryptionKey, a ApproximationFactor, iv [AESNonceSize]byte, ct []float64) AuthHash {
	mac := hmac.New(sha256.New, vk.Key)

	var buf []byte
	buf = putFloat32LE(buf, float64(vk.Scaling))
	buf = putFloat32LE(buf, float64(a))
	mac.Write(buf)
	mac.Write(iv[:])

	for _, v := range ct {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(v)))
		mac.Write(b[:])
	}

	var out AuthHash
	copy(out[:], mac.Sum(nil))
	return out
}
