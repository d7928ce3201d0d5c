package crypto

// Sizes, in bytes, of the fixed-width fields used throughout the DCPE wire
// formats. These never vary across key ids or tenants.
const (
	// EncryptionKeySize is the minimum length of an EncryptionKey.
	EncryptionKeySize = 32

	// AESKeySize is the size of an AES-256 key.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce/IV.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag.
	AESTagSize = 16

	// AuthHashSize is the size of the HMAC-SHA-256 authentication hash over
	// a vector ciphertext.
	AuthHashSize = 32

	// HeaderSize is the size of the binary key-id/type header.
	HeaderSize = 6
	// VectorMetadataSize is the size of the full framed metadata blob:
	// header(6) || iv(12) || authHash(32).
	VectorMetadataSize = HeaderSize + AESNonceSize + AuthHashSize

	// DeterministicMinSize is the minimum valid size of a deterministic
	// ciphertext blob: nonce(12) || tag(16), with zero-length plaintext.
	DeterministicMinSize = AESNonceSize + AESTagSize

	// DerivedSecretSize is the number of bytes HMAC-SHA-512 produces when
	// deriving a VectorEncryptionKey from a master secret.
	DerivedSecretSize = 64
	// unsafeBytesToKeyMinLen is the minimum input length accepted by
	// UnsafeBytesToKey: 3 bytes of scaling factor + 32 bytes of key.
	unsafeBytesToKeyMinLen = 35
)

// HKDF constants for deterministic text encryption (§6 of the specification).
// These are fixed and must never vary between implementations sharing a key,
// or ciphertexts stop being byte-comparable for equality filtering.
const (
	deterministicHKDFSalt = "DCPE-Deterministic"
	deterministicHKDFInfo = "deterministic_encryption_key"
)
