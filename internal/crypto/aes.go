package crypto

import (
	"crypto/aes"
	"crypto/cipher"
)

// encryptAESGCM seals plaintext under AES-256-GCM with the given key, nonce,
// and optional additional authenticated data. The returned slice is
// ciphertext || tag, as produced by cipher.AEAD.Seal.
func encryptAESGCM(key, nonce, aad, plaintext []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fErrorf(KindInvalidKey, "AES key must be %d bytes, got %d", AESKeySize, len(key))
	}
	if len(nonce) != AESNonceSize {
		return nil, fErrorf(KindInvalidInput, "AES-GCM nonce must be %d bytes, got %d", AESNonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, wrapError(KindEncrypt, err, "failed to initialize AES cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, wrapError(KindEncrypt, err, "failed to initialize AES-GCM")
	}

	return gcm.Seal(nil, nonce, plaintext, aad), nil
}

// decryptAESGCM opens ciphertextAndTag (ciphertext || tag) under AES-256-GCM.
// Any authentication failure — tampered ciphertext, wrong key, wrong AAD —
// is reported as KindDecrypt, indistinguishable in timing (§7).
func decryptAESGCM(key, nonce, aad, ciphertextAndTag []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fErrorf(KindInvalidKey, "AES key must be %d bytes, got %d", AESKeySize, len(key))
	}
	if len(nonce) != AESNonceSize {
		return nil, fErrorf(KindInvalidInput, "AES-GCM nonce must be %d bytes, got %d", AESNonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, wrapError(KindDecrypt, err, "failed to initialize AES cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, wrapError(KindDecrypt, err, "failed to initialize AES-GCM")
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertextAndTag, aad)
	if err != nil {
		return nil, newError(KindDecrypt, "AEAD authentication failed")
	}
	return plaintext, nil
}
