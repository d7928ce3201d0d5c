package crypto

// TextCiphertext is the result of EncryptText: three parallel byte strings
// per §3/§4.J. Framing them together (or not) is the caller's concern.
type TextCiphertext struct {
	Ciphertext []byte
	IV         [AESNonceSize]byte
	Tag        [AESTagSize]byte
}

// EncryptText implements §4.J: a fresh random IV, AES-256-GCM under the
// first AESKeySize bytes of key, no associated data.
func EncryptText(key EncryptionKey, pt []byte) (*TextCiphertext, error) {
	if len(key) < AESKeySize {
		return nil, fErrorf(KindInvalidKey, "text encryption key must be at least %d bytes, got %d", AESKeySize, len(key))
	}

	ivBytes, err := RandomBytes(AESNonceSize)
	if err != nil {
		return nil, err
	}
	var iv [AESNonceSize]byte
	copy(iv[:], ivBytes)

	sealed, err := encryptAESGCM(key[:AESKeySize], iv[:], nil, pt)
	if err != nil {
		return nil, err
	}

	ct := sealed[:len(sealed)-AESTagSize]
	var tag [AESTagSize]byte
	copy(tag[:], sealed[len(sealed)-AESTagSize:])

	return &TextCiphertext{Ciphertext: ct, IV: iv, Tag: tag}, nil
}

// DecryptText is the inverse of EncryptText; a tag mismatch is reported as
// KindDecrypt.
func DecryptText(key EncryptionKey, ct *TextCiphertext) ([]byte, error) {
	if len(key) < AESKeySize {
		return nil, fErrorf(KindInvalidKey, "text encryption key must be at least %d bytes, got %d", AESKeySize, len(key))
	}

	ciphertextAndTag := make([]byte, 0, len(ct.Ciphertext)+AESTagSize)
	ciphertextAndTag = append(ciphertextAndTag, ct.Ciphertext...)
	ciphertextAndTag = append(ciphertextAndTag, ct.Tag[:]...)

	return decryptAESGCM(key[:AESKeySize], ct.IV[:], nil, ciphertextAndTag)
}
