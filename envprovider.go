package dcpe

import (
	"context"
	"fmt"
	"os"

	"github.com/agilira/go-timecache"

	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

// EnvKeyProvider is a KeyProvider backed by base64url-encoded key material
// read from environment variables at lookup time. It never caches values,
// so rotating the process environment (e.g. via a secrets-sidecar rewrite)
// takes effect on the next GetKey call.
//
// Variable names are derived from a configurable prefix plus the request's
// key id: "<prefix>_<keyID>_VECTOR", "<prefix>_<keyID>_TEXT",
// "<prefix>_<keyID>_DETERMINISTIC". TenantID and Backend on the request are
// ignored — this provider serves one environment's worth of keys.
type EnvKeyProvider struct {
	Prefix string
}

// NewEnvKeyProvider constructs an EnvKeyProvider. An empty prefix defaults
// to "DCPE_KEY".
func NewEnvKeyProvider(prefix string) *EnvKeyProvider {
	if prefix == "" {
		prefix = "DCPE_KEY"
	}
	return &EnvKeyProvider{Prefix: prefix}
}

// GetKey implements KeyProvider.
func (p *EnvKeyProvider) GetKey(ctx context.Context, req KeyProviderRequest) (KeyMaterial, error) {
	vector, err := p.readBase64(req.KeyID, "VECTOR")
	if err != nil {
		return KeyMaterial{}, err
	}
	text, err := p.readBase64(req.KeyID, "TEXT")
	if err != nil {
		return KeyMaterial{}, err
	}
	deterministic, err := p.readBase64(req.KeyID, "DETERMINISTIC")
	if err != nil {
		return KeyMaterial{}, err
	}

	return KeyMaterial{
		VectorKeyMaterial: vector,
		TextKey:           text,
		DeterministicKey:  deterministic,
		RetrievedAt:       timecache.CachedTime().UTC(),
	}, nil
}

func (p *EnvKeyProvider) readBase64(keyID uint32, suffix string) ([]byte, error) {
	name := fmt.Sprintf("%s_%d_%s", p.Prefix, keyID, suffix)
	val, ok := os.LookupEnv(name)
	if !ok {
		return nil, newKeyProviderError("environment variable %s is not set", name)
	}

	decoded, err := crypto.FromBase64URL(val)
	if err != nil {
		return nil, wrapKeyProviderError(err, "environment variable %s is not valid base64url", name)
	}
	return decoded, nil
}
