package dcpe

import (
	"context"
	"errors"
	"testing"
)

type stubKeyProvider struct {
	material KeyMaterial
	err      error
}

func (s *stubKeyProvider) GetKey(ctx context.Context, req KeyProviderRequest) (KeyMaterial, error) {
	return s.material, s.err
}

func TestKeyProviderRegistry_DispatchesByBackendName(t *testing.T) {
	reg := NewKeyProviderRegistry()

	one := &stubKeyProvider{material: KeyMaterial{TextKey: []byte("one")}}
	two := &stubKeyProvider{material: KeyMaterial{TextKey: []byte("two")}}

	if err := reg.RegisterBackend("one", one); err != nil {
		t.Fatalf("RegisterBackend(one) error = %v", err)
	}
	if err := reg.RegisterBackend("two", two); err != nil {
		t.Fatalf("RegisterBackend(two) error = %v", err)
	}

	got, err := reg.GetKey(context.Background(), KeyProviderRequest{Backend: "two"})
	if err != nil {
		t.Fatalf("GetKey() error = %v", err)
	}
	if string(got.TextKey) != "two" {
		t.Errorf("TextKey = %q, want %q", got.TextKey, "two")
	}
}

func TestKeyProviderRegistry_EmptyBackendDefaultsToFirstRegistered(t *testing.T) {
	reg := NewKeyProviderRegistry()

	first := &stubKeyProvider{material: KeyMaterial{TextKey: []byte("first")}}
	second := &stubKeyProvider{material: KeyMaterial{TextKey: []byte("second")}}

	if err := reg.RegisterBackend("first", first); err != nil {
		t.Fatalf("RegisterBackend(first) error = %v", err)
	}
	if err := reg.RegisterBackend("second", second); err != nil {
		t.Fatalf("RegisterBackend(second) error = %v", err)
	}

	got, err := reg.GetKey(context.Background(), KeyProviderRequest{})
	if err != nil {
		t.Fatalf("GetKey() error = %v", err)
	}
	if string(got.TextKey) != "first" {
		t.Errorf("TextKey = %q, want %q (first registered backend)", got.TextKey, "first")
	}
}

func TestKeyProviderRegistry_UnknownBackendFails(t *testing.T) {
	reg := NewKeyProviderRegistry()
	if err := reg.RegisterBackend("known", &stubKeyProvider{}); err != nil {
		t.Fatalf("RegisterBackend() error = %v", err)
	}

	_, err := reg.GetKey(context.Background(), KeyProviderRequest{Backend: "nope"})
	if !errors.Is(err, ErrKeyProviderLookup) {
		t.Errorf("GetKey() error = %v, want ErrKeyProviderLookup", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("GetKey() error = %v, want ErrInvalidInput per the §7 condition→kind mapping", err)
	}
}

func TestKeyProviderRegistry_BackendLookupErrorPropagates(t *testing.T) {
	reg := NewKeyProviderRegistry()
	wantErr := errors.New("backend unavailable")
	if err := reg.RegisterBackend("flaky", &stubKeyProvider{err: wantErr}); err != nil {
		t.Fatalf("RegisterBackend() error = %v", err)
	}

	_, err := reg.GetKey(context.Background(), KeyProviderRequest{Backend: "flaky"})
	if !errors.Is(err, ErrKeyProviderLookup) {
		t.Errorf("GetKey() error = %v, want ErrKeyProviderLookup", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("GetKey() error = %v, want ErrInvalidInput per the §7 condition→kind mapping", err)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("GetKey() error = %v, want it to wrap the backend's own error", err)
	}
}

func TestKeyProviderRegistry_RegisterBackendRejectsNilProvider(t *testing.T) {
	reg := NewKeyProviderRegistry()
	err := reg.RegisterBackend("nil-backend", nil)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("RegisterBackend(nil) error = %v, want ErrInvalidConfiguration", err)
	}
}
