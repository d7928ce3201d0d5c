package dcpe

// clientConfig holds configuration for the client, populated by Option
// functions before New or NewWithProvider builds the derived keys.
type clientConfig struct {
	tenantID        string
	derivationPath  string
	approximation   ApproximationFactor
	providerTimeout int // seconds; 0 means no explicit timeout is applied
	providerBackend string
}

const (
	defaultDerivationPath      = "default"
	defaultApproximationFactor = ApproximationFactor(1.0)
)

// Option configures a Client constructed by New or NewWithProvider.
type Option func(*clientConfig)

// WithTenantID sets the tenant id mixed into key derivation from a master
// secret. NewWithProvider derives nothing from it; it passes it to the
// KeyProvider as KeyProviderRequest.TenantID.
func WithTenantID(tenantID string) Option {
	return func(c *clientConfig) {
		c.tenantID = tenantID
	}
}

// WithDerivationPath sets the derivation path mixed into key derivation.
// Default: "default".
func WithDerivationPath(path string) Option {
	return func(c *clientConfig) {
		c.derivationPath = path
	}
}

// WithApproximationFactor sets the approximation factor used by
// EncryptVector/DecryptVector. Default: 1.0.
func WithApproximationFactor(a ApproximationFactor) Option {
	return func(c *clientConfig) {
		c.approximation = a
	}
}

// WithProviderBackend selects which backend a KeyProviderRegistry should use
// when NewWithProvider is called with a registry. Ignored for a bare
// KeyProvider.
func WithProviderBackend(name string) Option {
	return func(c *clientConfig) {
		c.providerBackend = name
	}
}

// WithProviderTimeoutSeconds bounds how long NewWithProvider waits on the
// KeyProvider lookup before giving up.
func WithProviderTimeoutSeconds(seconds int) Option {
	return func(c *clientConfig) {
		c.providerTimeout = seconds
	}
}
