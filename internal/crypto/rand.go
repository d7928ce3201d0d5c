package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"math"
)

// randReader is the source of OS randomness for RandomBytes, Uniform01, and
// SampleNormal. It is never a seeded PRNG in production; tests may override
// it with SetRandReaderForTesting.
var randReader io.Reader = rand.Reader

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, wrapError(KindEncrypt, err, "failed to read random bytes")
	}
	return b, nil
}

// Uniform01 draws a float64 uniformly distributed in [0, 1) by reading 4
// random bytes as a little-endian uint32 and dividing by 2^32 (§4.D).
func Uniform01() (float64, error) {
	b, err := RandomBytes(4)
	if err != nil {
		return 0, err
	}
	u := binary.LittleEndian.Uint32(b)
	return float64(u) / (1 << 32), nil
}

// SampleNormal draws a standard-normal sample via the Box-Muller transform
// over two independent Uniform01 draws (§4.D). A u1 of exactly zero (which
// would send ln(u1) to -Inf) is resampled; this has probability at most
// 2^-32 and is not itself an error condition.
func SampleNormal() (float64, error) {
	for {
		u1, err := Uniform01()
		if err != nil {
			return 0, err
		}
		if u1 == 0 {
			continue
		}
		u2, err := Uniform01()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2), nil
	}
}

// keyedPRF is a restartable, stateful generator of Uniform01-distributed
// floats derived from HMAC-SHA-256(key, counter). Each call to newKeyedPRF
// starts the counter at zero; it is intended for exactly one shuffle or
// unshuffle pass.
//
// The reference implementation uses a single-byte counter that wraps after
// 256 draws, biasing shuffles of vectors longer than 256 dimensions. This
// implementation widens the counter to 4 bytes little-endian (§9 REDESIGN
// FLAG: "PRF counter width"), since no bit-exact interop with a foreign
// reference is required here.
type keyedPRF struct {
	key     []byte
	counter uint32
}

func newKeyedPRF(key EncryptionKey) *keyedPRF {
	return &keyedPRF{key: key}
}

// next returns the next Uniform01-distributed float from the PRF stream.
func (p *keyedPRF) next() float64 {
	var counterBytes [4]byte
	binary.LittleEndian.PutUint32(counterBytes[:], p.counter)
	p.counter++

	mac := hmac.New(sha256.New, p.key)
	mac.Write(counterBytes[:])
	digest := mac.Sum(nil)

	u := binary.LittleEndian.Uint32(digest[:4])
	return float64(u) / (1 << 32)
}
