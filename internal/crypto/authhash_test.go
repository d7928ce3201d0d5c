package crypto

import "testing"

func TestComputeAuthHash_DeterministicPerInputs(t *testing.T) {
	vk := VectorEncryptionKey{Scaling: 3, Key: EncryptionKey("auth-hash-test-key-aaaaaaaaaaaaa")}
	iv := [AESNonceSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	ct := []float64{1.5, -2.25, 3.0}

	h1 := computeAuthHash(vk, 2, iv, ct)
	h2 := computeAuthHash(vk, 2, iv, ct)

	if !h1.Equal(h2) {
		t.Error("computeAuthHash() is not deterministic for identical inputs")
	}
}

func TestComputeAuthHash_SensitiveToEachInput(t *testing.T) {
	vk := VectorEncryptionKey{Scaling: 3, Key: EncryptionKey("auth-hash-test-key-aaaaaaaaaaaaa")}
	iv := [AESNonceSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	ct := []float64{1.5, -2.25, 3.0}

	base := computeAuthHash(vk, 2, iv, ct)

	otherScaling := VectorEncryptionKey{Scaling: 4, Key: vk.Key}
	if computeAuthHash(otherScaling, 2, iv, ct).Equal(base) {
		t.Error("auth hash did not change with scaling factor")
	}

	if computeAuthHash(vk, 3, iv, ct).Equal(base) {
		t.Error("auth hash did not change with approximation factor")
	}

	otherIV := iv
	otherIV[0] ^= 0xff
	if computeAuthHash(vk, 2, otherIV, ct).Equal(base) {
		t.Error("auth hash did not change with IV")
	}

	otherCT := []float64{1.5, -2.25, 3.1}
	if computeAuthHash(vk, 2, iv, otherCT).Equal(base) {
		t.Error("auth hash did not change with ciphertext contents")
	}

	otherKey := VectorEncryptionKey{Scaling: vk.Scaling, Key: EncryptionKey("different-test-key-bbbbbbbbbbbbb")}
	if computeAuthHash(otherKey, 2, iv, ct).Equal(base) {
		t.Error("auth hash did not change with key")
	}
}

func BenchmarkAuthHash(b *testing.B) {
	vk := VectorEncryptionKey{Scaling: 3, Key: EncryptionKey("auth-hash-test-key-aaaaaaaaaaaaa")}
	iv := [AESNonceSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	ct := make([]float64, 256)
	for i := range ct {
		ct[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = computeAuthHash(vk, 2, iv, ct)
	}
}

func TestAuthHash_Equal(t *testing.T) {
	var a, b AuthHash
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(i)
	}
	if !a.Equal(b) {
		t.Error("identical auth hashes reported as unequal")
	}

	b[0] ^= 0xff
	if a.Equal(b) {
		t.Error("distinct auth hashes reported as equal")
	}
}
