package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// EncryptDeterministic implements §4.I: the same (key, plaintext) always
// produces byte-identical output, suitable for equality filtering on
// ciphertexts. The nonce is derived from an HMAC over the plaintext rather
// than drawn randomly, which is what makes the scheme deterministic.
//
// Output layout: nonce(12) || ciphertext(len(pt)) || tag(16).
func EncryptDeterministic(key EncryptionKey, pt string) ([]byte, error) {
	dk, err := deterministicSubkey(key)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, dk)
	mac.Write([]byte(pt))
	nonce := mac.Sum(nil)[:AESNonceSize]

	sealed, err := encryptAESGCM(dk, nonce, nil, []byte(pt))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, AESNonceSize+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)
	return out, nil
}

// DecryptDeterministic implements §4.I decrypt: split nonce/ciphertext/tag,
// rederive the subkey, and AEAD-open. Any authentication failure is
// reported as KindDecrypt.
func DecryptDeterministic(key EncryptionKey, blob []byte) (string, error) {
	if len(blob) < DeterministicMinSize {
		return "", fErrorf(KindInvalidInput,
			"deterministic ciphertext too short: got %d bytes, want at least %d", len(blob), DeterministicMinSize)
	}

	dk, err := deterministicSubkey(key)
	if err != nil {
		return "", err
	}

	nonce := blob[:AESNonceSize]
	ciphertextAndTag := blob[AESNonceSize:]

	pt, err := decryptAESGCM(dk, nonce, nil, ciphertextAndTag)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}
