// Package crypto provides the cryptographic primitives behind distance-
// comparison-preserving encryption of vector embeddings, plus companion
// deterministic and standard text encryption.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - HMAC-SHA-512: derives a per-tenant VectorEncryptionKey (scaling factor
//     and 32-byte key) from a master secret and a derivation path.
//
//   - HKDF-SHA-256 (RFC 5869): derives the subkey used for deterministic
//     text encryption, with domain separation via a fixed salt/info pair.
//
//   - AES-256-GCM: authenticated encryption for standard and deterministic
//     text.
//
//   - HMAC-SHA-256: authenticates vector ciphertexts (the auth hash) and
//     drives the keyed pseudo-random stream used for Fisher-Yates coordinate
//     shuffling. n-ball noise is sampled from the CSPRNG, not from this
//     stream.
//
// # Security Model
//
// The scheme provides:
//
//   - Approximate distance preservation: pairwise distances between
//     ciphertext vectors are preserved up to the bound set by the
//     ApproximationFactor, not exactly.
//   - Confidentiality: without the VectorEncryptionKey, neither the
//     coordinate values nor their ordering within the vector can be
//     recovered.
//   - Tamper detection: [DecryptVector] verifies the auth hash before
//     returning a plaintext; [DecryptText] and [DecryptDeterministic] rely
//     on AES-GCM's tag for the same property.
//
// # Critical Security Notes
//
// Auth hash and AEAD tag comparisons use constant-time equality so that a
// wrong key and a tampered ciphertext fail identically in timing.
//
// AES-GCM nonces must never repeat under the same key. [EncryptText] draws a
// fresh random nonce per call; [EncryptDeterministic] derives its nonce from
// an HMAC over the plaintext, which is safe only because the scheme is
// explicitly deterministic per (key, plaintext) pair.
//
// # Key Management
//
// Use [DeriveFromSecret] to derive a VectorEncryptionKey from a master
// secret, tenant ID, and derivation path. Use [UnsafeBytesToKey] only when a
// key has already been derived elsewhere and needs reconstructing from its
// raw bytes.
//
// Keep secrets and derived keys out of logs and version control.
//
// # Base64 Encoding
//
// [ToBase64URL]/[FromBase64URL] encode wire-format values (headers, metadata,
// ciphertexts) as URL-safe base64 without padding (RFC 4648 §5).
package crypto
