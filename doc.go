// Package dcpe implements client-side distance-comparison-preserving
// encryption (DCPE) for vector embeddings, plus companion deterministic and
// standard authenticated encryption for the scalar fields stored alongside
// them.
//
// A Client holds three derived keys — a vector key, a text key, and a
// deterministic key — built from one master secret (New) or looked up from
// a KeyProvider (NewWithProvider). EncryptVector scales a vector's
// coordinates, shuffles them under a keyed permutation, and adds
// bounded random noise so that approximate distance between two vectors is
// preserved across encryption while individual coordinates are not
// recoverable without the key:
//
//	client, err := dcpe.New(masterSecret, dcpe.WithTenantID("acme"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ciphertext, metadata, err := client.EncryptVector(embedding)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	recovered, keyID, err := client.DecryptVector(ciphertext, metadata)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// EncryptText and EncryptDeterministic cover the two companion modes:
// EncryptText is standard AES-256-GCM with a fresh nonce per call, suitable
// for any scalar field; EncryptDeterministic derives its nonce from the
// plaintext itself, so the same (key, plaintext) pair always produces the
// same ciphertext — useful for equality filtering on encrypted columns, at
// the cost of leaking which ciphertexts share a plaintext.
//
// RotateKey swaps a Client's active key triple atomically; the previous
// triple is not retained, so ciphertexts produced under a retired key id can
// no longer be decrypted by that Client. DecryptVector reports the key id
// recorded in a ciphertext's metadata so callers backed by a
// KeyProviderRegistry can look up the right key version for older data.
package dcpe
