package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF implements RFC 5869 HKDF-SHA-256 extract-and-expand key derivation
// (§4.C). Callers supply the input key material and desired output length;
// salt and info default to empty when omitted.
func HKDF(ikm, salt, info []byte, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, wrapError(KindSerialization, err, "HKDF-SHA-256 expand failed")
	}
	return out, nil
}

// deterministicSubkey derives the 32-byte AES-256 key used for deterministic
// text encryption (§4.I step 1) from a raw deterministic-encryption key.
func deterministicSubkey(key []byte) ([]byte, error) {
	return HKDF(key, []byte(deterministicHKDFSalt), []byte(deterministicHKDFInfo), AESKeySize)
}
