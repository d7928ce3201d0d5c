package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestEncryptDecryptAESGCM_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
		aad       []byte
	}{
		{"empty", []byte{}, nil},
		{"simple", []byte("hello world"), nil},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}, nil},
		{"with aad", []byte("secret"), []byte("context")},
		{"large", make([]byte, 10000), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, AESKeySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatal(err)
			}
			nonce := make([]byte, AESNonceSize)
			if _, err := rand.Read(nonce); err != nil {
				t.Fatal(err)
			}

			sealed, err := encryptAESGCM(key, nonce, tt.aad, tt.plaintext)
			if err != nil {
				t.Fatalf("encryptAESGCM() error = %v", err)
			}

			wantLen := len(tt.plaintext) + AESTagSize
			if len(sealed) != wantLen {
				t.Errorf("sealed length = %d, want %d", len(sealed), wantLen)
			}

			opened, err := decryptAESGCM(key, nonce, tt.aad, sealed)
			if err != nil {
				t.Fatalf("decryptAESGCM() error = %v", err)
			}
			if !bytes.Equal(opened, tt.plaintext) {
				t.Errorf("opened = %v, want %v", opened, tt.plaintext)
			}
		})
	}
}

func TestEncryptAESGCM_InvalidKeySize(t *testing.T) {
	for _, keySize := range []int{0, 16, 64} {
		key := make([]byte, keySize)
		nonce := make([]byte, AESNonceSize)
		_, err := encryptAESGCM(key, nonce, nil, []byte("test"))
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("keySize=%d: expected ErrInvalidKey, got %v", keySize, err)
		}
	}
}

func TestEncryptAESGCM_InvalidNonceSize(t *testing.T) {
	key := make([]byte, AESKeySize)
	for _, nonceSize := range []int{0, 8, 16} {
		nonce := make([]byte, nonceSize)
		_, err := encryptAESGCM(key, nonce, nil, []byte("test"))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("nonceSize=%d: expected ErrInvalidInput, got %v", nonceSize, err)
		}
	}
}

func TestDecryptAESGCM_TamperedCiphertext(t *testing.T) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	sealed, err := encryptAESGCM(key, nonce, nil, []byte("sensitive data"))
	if err != nil {
		t.Fatal(err)
	}
	sealed[0] ^= 0xff

	_, err = decryptAESGCM(key, nonce, nil, sealed)
	if !errors.Is(err, ErrDecrypt) {
		t.Errorf("expected ErrDecrypt, got %v", err)
	}
}

func TestDecryptAESGCM_WrongKey(t *testing.T) {
	key1 := make([]byte, AESKeySize)
	key2 := make([]byte, AESKeySize)
	if _, err := rand.Read(key1); err != nil {
		t.Fatal(err)
	}
	if _, err := rand.Read(key2); err != nil {
		t.Fatal(err)
	}
	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	sealed, err := encryptAESGCM(key1, nonce, nil, []byte("sensitive data"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = decryptAESGCM(key2, nonce, nil, sealed)
	if !errors.Is(err, ErrDecrypt) {
		t.Errorf("expected ErrDecrypt, got %v", err)
	}
}

func TestDecryptAESGCM_WrongAAD(t *testing.T) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	sealed, err := encryptAESGCM(key, nonce, []byte("aad-one"), []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = decryptAESGCM(key, nonce, []byte("aad-two"), sealed)
	if !errors.Is(err, ErrDecrypt) {
		t.Errorf("expected ErrDecrypt, got %v", err)
	}
}

func BenchmarkEncryptAESGCM(b *testing.B) {
	key := make([]byte, AESKeySize)
	nonce := make([]byte, AESNonceSize)
	plaintext := make([]byte, 1000)
	rand.Read(key)
	rand.Read(nonce)
	rand.Read(plaintext)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = encryptAESGCM(key, nonce, nil, plaintext)
	}
}

func BenchmarkDecryptAESGCM(b *testing.B) {
	key := make([]byte, AESKeySize)
	nonce := make([]byte, AESNonceSize)
	plaintext := make([]byte, 1000)
	rand.Read(key)
	rand.Read(nonce)
	rand.Read(plaintext)

	sealed, _ := encryptAESGCM(key, nonce, nil, plaintext)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decryptAESGCM(key, nonce, nil, sealed)
	}
}
