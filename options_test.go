package dcpe

import "testing"

func TestDefaultConstants(t *testing.T) {
	if defaultDerivationPath != "default" {
		t.Errorf("defaultDerivationPath = %q, want %q", defaultDerivationPath, "default")
	}
	if defaultApproximationFactor != 1.0 {
		t.Errorf("defaultApproximationFactor = %v, want 1.0", defaultApproximationFactor)
	}
}

func TestWithTenantID(t *testing.T) {
	cfg := &clientConfig{}
	WithTenantID("acme")(cfg)
	if cfg.tenantID != "acme" {
		t.Errorf("tenantID = %q, want %q", cfg.tenantID, "acme")
	}
}

func TestWithDerivationPath(t *testing.T) {
	cfg := &clientConfig{}
	WithDerivationPath("v2")(cfg)
	if cfg.derivationPath != "v2" {
		t.Errorf("derivationPath = %q, want %q", cfg.derivationPath, "v2")
	}
}

func TestWithApproximationFactor(t *testing.T) {
	cfg := &clientConfig{}
	WithApproximationFactor(2.5)(cfg)
	if cfg.approximation != 2.5 {
		t.Errorf("approximation = %v, want 2.5", cfg.approximation)
	}
}

func TestWithProviderBackend(t *testing.T) {
	cfg := &clientConfig{}
	WithProviderBackend("aws-kms")(cfg)
	if cfg.providerBackend != "aws-kms" {
		t.Errorf("providerBackend = %q, want %q", cfg.providerBackend, "aws-kms")
	}
}

func TestWithProviderTimeoutSeconds(t *testing.T) {
	cfg := &clientConfig{}
	WithProviderTimeoutSeconds(5)(cfg)
	if cfg.providerTimeout != 5 {
		t.Errorf("providerTimeout = %d, want 5", cfg.providerTimeout)
	}
}

func TestOptions_ComposeIndependently(t *testing.T) {
	cfg := &clientConfig{}
	opts := []Option{
		WithTenantID("acme"),
		WithDerivationPath("v3"),
		WithApproximationFactor(1.5),
		WithProviderBackend("vault"),
		WithProviderTimeoutSeconds(10),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.tenantID != "acme" || cfg.derivationPath != "v3" || cfg.approximation != 1.5 ||
		cfg.providerBackend != "vault" || cfg.providerTimeout != 10 {
		t.Errorf("cfg = %+v, fields did not compose independently", cfg)
	}
}
