package crypto

import "math"

// VectorCiphertext is the output of EncryptVector: the ciphertext
// coordinates together with the IV and auth hash needed to decrypt and
// verify them.
type VectorCiphertext struct {
	Ciphertext []float64
	IV         [AESNonceSize]byte
	AuthHash   AuthHash
}

// EncryptVector implements §4.H encrypt: shuffle, scale, add n-ball noise,
// authenticate. Decryption recovers the plaintext only approximately — see
// DecryptVector.
func EncryptVector(vk VectorEncryptionKey, a ApproximationFactor, v []float64) (*VectorCiphertext, error) {
	if err := vk.Scaling.validate(); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	shuffled := Shuffle(vk.Key, v)

	ivBytes, err := RandomBytes(AESNonceSize)
	if err != nil {
		return nil, err
	}
	var iv [AESNonceSize]byte
	copy(iv[:], ivBytes)

	ct := make([]float64, len(v))
	if len(v) > 0 {
		noise, err := NoiseVector(vk, iv, a, len(v))
		if err != nil {
			return nil, err
		}
		for i := range ct {
			val := float64(vk.Scaling)*shuffled[i] + noise[i]
			if !isFinite(val) {
				return nil, fErrorf(KindOverflow, "ciphertext element %d is not finite after scale+noise", i)
			}
			ct[i] = val
		}
	}

	h := computeAuthHash(vk, a, iv, ct)
	return &VectorCiphertext{Ciphertext: ct, IV: iv, AuthHash: h}, nil
}

// DecryptVector implements §4.H decrypt: verify the auth hash in constant
// time, subtract freshly-drawn n-ball noise, unscale, unshuffle.
//
// Because noise is re-drawn at decryption rather than derived deterministically
// from (key, iv), the recovered vector differs from the original plaintext by
// the difference of two independent noise draws divided by the scaling
// factor. Each draw has norm below s*a/4, so the error is below a/2 in
// Euclidean norm and per coordinate, not exact equality. This mirrors the reference implementation
// (§9 Open Questions: "Noise regeneration on decrypt").
func DecryptVector(vk VectorEncryptionKey, a ApproximationFactor, ct *VectorCiphertext) ([]float64, error) {
	if err := vk.Scaling.validate(); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	expected := computeAuthHash(vk, a, ct.IV, ct.Ciphertext)
	if !expected.Equal(ct.AuthHash) {
		return nil, newError(KindDecrypt, "authentication hash mismatch")
	}

	n := len(ct.Ciphertext)
	shuffled := make([]float64, n)
	if n > 0 {
		noise, err := NoiseVector(vk, ct.IV, a, n)
		if err != nil {
			return nil, err
		}
		for i, c := range ct.Ciphertext {
			shuffled[i] = (c - noise[i]) / float64(vk.Scaling)
		}
	}

	return Unshuffle(vk.Key, shuffled), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
