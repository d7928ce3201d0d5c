package dcpe

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// KeyProviderRequest describes a single key lookup: which key version, for
// which tenant, against which backend (when the caller is a
// KeyProviderRegistry fronting more than one). RequestedAt is stamped by the
// caller (e.g. NewWithProvider) before the lookup, for audit logging of
// provider round-trip latency.
type KeyProviderRequest struct {
	KeyID       uint32
	TenantID    string
	Backend     string
	RequestedAt time.Time
}

// KeyMaterial is the key triple a KeyProvider returns for a KeyProviderRequest.
// VectorKeyMaterial is interpreted by crypto.UnsafeBytesToKey (3 bytes of
// scaling factor, 32 bytes of key); TextKey and DeterministicKey must each
// be at least crypto.AESKeySize bytes. RetrievedAt is stamped by the
// provider implementation when the material was produced.
type KeyMaterial struct {
	VectorKeyMaterial []byte
	TextKey           []byte
	DeterministicKey  []byte
	RetrievedAt       time.Time
}

// KeyProvider is the capability interface a Client constructed via
// NewWithProvider depends on, per §9's key-hierarchy provider model. A
// backend-specific implementation (env var, KMS, secrets manager) looks up
// key material out of band and returns it keyed by request.
type KeyProvider interface {
	GetKey(ctx context.Context, req KeyProviderRequest) (KeyMaterial, error)
}

// KeyProviderRegistry fronts multiple named KeyProvider backends behind a
// single KeyProvider, selecting among them by KeyProviderRequest.Backend.
type KeyProviderRegistry struct {
	mu             sync.RWMutex
	backends       map[string]KeyProvider
	defaultBackend string
}

// NewKeyProviderRegistry constructs an empty registry with no backends.
func NewKeyProviderRegistry() *KeyProviderRegistry {
	return &KeyProviderRegistry{
		backends: make(map[string]KeyProvider),
	}
}

// RegisterBackend adds a named KeyProvider to the registry. The first
// backend registered becomes the default used when a request's Backend
// field is empty.
func (r *KeyProviderRegistry) RegisterBackend(name string, provider KeyProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if provider == nil {
		return fmt.Errorf("%w: backend %q: provider must not be nil", ErrInvalidConfiguration, name)
	}

	r.backends[name] = provider
	if r.defaultBackend == "" {
		r.defaultBackend = name
	}
	return nil
}

// GetKey implements KeyProvider by dispatching to the named backend (or the
// default backend, if req.Backend is empty).
func (r *KeyProviderRegistry) GetKey(ctx context.Context, req KeyProviderRequest) (KeyMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := req.Backend
	if name == "" {
		name = r.defaultBackend
	}

	backend, ok := r.backends[name]
	if !ok {
		return KeyMaterial{}, newKeyProviderError("no such backend %q", name)
	}

	material, err := backend.GetKey(ctx, req)
	if err != nil {
		return KeyMaterial{}, wrapKeyProviderError(err, "backend %q", name)
	}
	return material, nil
}
