package crypto

import "io"

// SetRandReaderForTesting overrides the CSPRNG used by RandomBytes,
// Uniform01, and SampleNormal. It returns a function that restores the
// original reader. Since this package is internal, callers outside the
// module cannot reach this hook — it exists purely for deterministic unit
// tests of the noise and IV generation paths.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
