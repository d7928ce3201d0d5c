package dcpe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agilira/go-timecache"

	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

// ApproximationFactor controls the radius of the noise ball added to an
// encrypted vector's coordinates: larger values give stronger confidentiality
// at the cost of looser distance preservation. It is a public alias of the
// internal package's type so callers never need to import internal/crypto.
type ApproximationFactor = crypto.ApproximationFactor

// VectorEncryptionKey and EncryptionKey are public aliases of the internal
// package's key types, so a caller driving RotateKey with directly-obtained
// material (§4.L) never needs to import internal/crypto to construct one.
type (
	VectorEncryptionKey = crypto.VectorEncryptionKey
	EncryptionKey       = crypto.EncryptionKey
)

// keyTriple is the set of derived key material a Client operates under. A
// rotation replaces the whole triple atomically; the previous triple is not
// retained, so ciphertexts under a retired key id can no longer be decrypted
// by this Client. RotatedAt records when this triple became active, for
// audit logging of key lifecycle transitions.
type keyTriple struct {
	keyID            uint32
	vectorKey        crypto.VectorEncryptionKey
	textKey          crypto.EncryptionKey
	deterministicKey crypto.EncryptionKey
	rotatedAt        time.Time
}

// Client holds derived DCPE key material and performs vector, text, and
// deterministic encryption under it. A Client is safe for concurrent use;
// RotateKey swaps the active key triple under a write lock while readers
// encrypting or decrypting under the old triple finish unblocked.
type Client struct {
	mu     sync.RWMutex
	keys   keyTriple
	approx ApproximationFactor
	closed bool
}

// New derives a Client's vector, text, and deterministic keys from a single
// master secret of at least crypto.EncryptionKeySize bytes, per §4.B/§4.L.
// The tenant id and derivation path (WithTenantID, WithDerivationPath) are
// mixed into the derivation so distinct tenants sharing a secret get
// independent key material.
func New(secret []byte, opts ...Option) (*Client, error) {
	cfg := clientConfig{
		derivationPath: defaultDerivationPath,
		approximation:  defaultApproximationFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(secret) < crypto.EncryptionKeySize {
		return nil, fmt.Errorf("%w: master secret must be at least %d bytes, got %d", ErrInvalidKey, crypto.EncryptionKeySize, len(secret))
	}

	vk, err := crypto.DeriveFromSecret(secret, cfg.tenantID, cfg.derivationPath)
	if err != nil {
		return nil, wrapError(err)
	}

	textKey, err := crypto.HKDF(secret, []byte(cfg.tenantID+"-"+cfg.derivationPath), []byte("dcpe-text-key"), crypto.AESKeySize)
	if err != nil {
		return nil, wrapError(err)
	}
	deterministicKey, err := crypto.HKDF(secret, []byte(cfg.tenantID+"-"+cfg.derivationPath), []byte("dcpe-deterministic-key"), crypto.AESKeySize)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{
		keys: keyTriple{
			keyID:            0,
			vectorKey:        vk,
			textKey:          crypto.EncryptionKey(textKey),
			deterministicKey: crypto.EncryptionKey(deterministicKey),
			rotatedAt:        timecache.CachedTime().UTC(),
		},
		approx: cfg.approximation,
	}, nil
}

// NewWithProvider builds a Client from key material looked up from a
// KeyProvider rather than derived client-side from a master secret, per
// §4.L's asynchronous construction path. keyID identifies which key version
// the provider should return; it is recorded on the Client and stamped on
// every ciphertext header it produces.
//
// If WithProviderTimeoutSeconds was supplied, the lookup is bounded by a
// derived context with that deadline; otherwise ctx is used as given.
func NewWithProvider(ctx context.Context, provider KeyProvider, keyID uint32, opts ...Option) (*Client, error) {
	cfg := clientConfig{
		derivationPath: defaultDerivationPath,
		approximation:  defaultApproximationFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.providerTimeout)*time.Second)
		defer cancel()
	}

	material, err := provider.GetKey(ctx, KeyProviderRequest{
		KeyID:       keyID,
		TenantID:    cfg.tenantID,
		Backend:     cfg.providerBackend,
		RequestedAt: timecache.CachedTime().UTC(),
	})
	if err != nil {
		return nil, wrapError(err)
	}

	vk, err := crypto.UnsafeBytesToKey(material.VectorKeyMaterial)
	if err != nil {
		return nil, wrapError(err)
	}

	rotatedAt := material.RetrievedAt
	if rotatedAt.IsZero() {
		rotatedAt = timecache.CachedTime().UTC()
	}

	return &Client{
		keys: keyTriple{
			keyID:            keyID,
			vectorKey:        vk,
			textKey:          crypto.EncryptionKey(material.TextKey),
			deterministicKey: crypto.EncryptionKey(material.DeterministicKey),
			rotatedAt:        rotatedAt,
		},
		approx: cfg.approximation,
	}, nil
}

// RotateKey atomically replaces the Client's active key triple. In-flight
// operations started under the previous triple complete normally; new
// operations use the new triple as soon as RotateKey returns. The previous
// triple is discarded — this Client can no longer decrypt ciphertexts
// produced under the retired key id, per §5.
func (c *Client) RotateKey(vk VectorEncryptionKey, textKey, deterministicKey EncryptionKey, keyID uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	c.keys = keyTriple{
		keyID:            keyID,
		vectorKey:        vk,
		textKey:          textKey,
		deterministicKey: deterministicKey,
		rotatedAt:        timecache.CachedTime().UTC(),
	}
	return nil
}

// KeyRotatedAt reports when the Client's active key triple became active —
// either the time New/NewWithProvider built it, or the time of the most
// recent RotateKey call.
func (c *Client) KeyRotatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys.rotatedAt
}

// EncryptVector encrypts v under the Client's active vector key and
// approximation factor, returning the ciphertext coordinates and the framed
// 50-byte VectorMetadata blob (header || iv || auth hash) needed to decrypt
// them later, per §4.H/§4.K.
func (c *Client) EncryptVector(v []float64) (ciphertext []float64, metadata []byte, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, nil, ErrClientClosed
	}

	vc, err := crypto.EncryptVector(c.keys.vectorKey, c.approx, v)
	if err != nil {
		return nil, nil, wrapError(err)
	}

	meta, err := crypto.EncodeVectorMetadata(crypto.Header{
		KeyID:       c.keys.keyID,
		EdekType:    crypto.EdekStandalone,
		PayloadType: crypto.PayloadVectorMetadata,
	}, vc.IV, vc.AuthHash)
	if err != nil {
		return nil, nil, wrapError(err)
	}

	return vc.Ciphertext, meta, nil
}

// DecryptVector is the inverse of EncryptVector. It returns the recovered
// vector together with the key id recorded in metadata, so a caller backed
// by a KeyProviderRegistry can tell which key version produced this
// ciphertext (§9 Open Questions, "surfacing the key id").
//
// The recovered vector differs from the original plaintext by less than half
// the approximation factor per coordinate: noise is redrawn at decryption
// time rather than stored, so the error is the difference of two noise
// draws divided by the scaling factor. This is an approximate inverse, not
// an exact one.
func (c *Client) DecryptVector(ciphertext []float64, metadata []byte) (v []float64, keyID uint32, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, 0, ErrClientClosed
	}

	h, iv, ah, err := crypto.DecodeVectorMetadata(metadata)
	if err != nil {
		return nil, 0, wrapError(err)
	}

	v, err = crypto.DecryptVector(c.keys.vectorKey, c.approx, &crypto.VectorCiphertext{
		Ciphertext: ciphertext,
		IV:         iv,
		AuthHash:   ah,
	})
	if err != nil {
		return nil, 0, wrapError(err)
	}

	return v, h.KeyID, nil
}

// EncryptText encrypts pt under the Client's active text key with a fresh
// random IV (§4.J). Equal plaintexts produce unrelated ciphertexts.
func (c *Client) EncryptText(pt []byte) (*crypto.TextCiphertext, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	ct, err := crypto.EncryptText(c.keys.textKey, pt)
	if err != nil {
		return nil, wrapError(err)
	}
	return ct, nil
}

// DecryptText is the inverse of EncryptText.
func (c *Client) DecryptText(ct *crypto.TextCiphertext) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	pt, err := crypto.DecryptText(c.keys.textKey, ct)
	if err != nil {
		return nil, wrapError(err)
	}
	return pt, nil
}

// EncryptDeterministic encrypts pt under the Client's active deterministic
// key, per §4.I. The same (key, plaintext) pair always produces
// byte-identical output, which makes the result suitable for equality
// filtering on ciphertexts but unsuitable where unlinkability matters.
func (c *Client) EncryptDeterministic(pt string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	blob, err := crypto.EncryptDeterministic(c.keys.deterministicKey, pt)
	if err != nil {
		return nil, wrapError(err)
	}
	return blob, nil
}

// DecryptDeterministic is the inverse of EncryptDeterministic.
func (c *Client) DecryptDeterministic(blob []byte) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return "", ErrClientClosed
	}

	pt, err := crypto.DecryptDeterministic(c.keys.deterministicKey, blob)
	if err != nil {
		return "", wrapError(err)
	}
	return pt, nil
}

// Close zeroizes the Client's key material. It is idempotent: calling Close
// more than once is a no-op. Every other method returns ErrClientClosed
// after Close has run.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	zero(c.keys.vectorKey.Key)
	zero(c.keys.textKey)
	zero(c.keys.deterministicKey)
	c.keys = keyTriple{}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
