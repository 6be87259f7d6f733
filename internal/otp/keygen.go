package otp

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/tink-crypto/tink-go/v2/subtle/random"
)

// KeySource produces key material. Generate never fails and returns exactly size bytes.
type KeySource interface {
	Generate(size int) []byte
}

// KeySourceFunc adapts a function to a KeySource.
type KeySourceFunc func(size int) []byte

// Generate calls f(size).
func (f KeySourceFunc) Generate(size int) []byte {
	return f(size)
}

// Names of the selectable key sources.
const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

// NewKeySource returns the key source registered under name.
func NewKeySource(name string) (KeySource, error) {
	switch name {
	case SourceMath, "":
		return MathKeys(), nil
	case SourceCrypto:
		return CryptoKeys(), nil
	default:
		return nil, fmt.Errorf("unknown key source %q", name)
	}
}

// MathKeys draws every byte from the process-wide math/rand generator.
// It is not suitable for anything that needs unpredictable keys.
func MathKeys() KeySource {
	return KeySourceFunc(func(size int) []byte {
		key := make([]byte, max(0, size))

		for i := range key {
			key[i] = byte(rand.Uint32()) //nolint:gosec // non-cryptographic by contract
		}

		return key
	})
}

// SeededKeys returns a reproducible source. Safe for concurrent use.
func SeededKeys(seed uint64) KeySource {
	var mu sync.Mutex

	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // seeded on purpose

	return KeySourceFunc(func(size int) []byte {
		mu.Lock()
		defer mu.Unlock()

		key := make([]byte, max(0, size))

		for i := range key {
			key[i] = byte(rng.Uint32())
		}

		return key
	})
}

// CryptoKeys draws key material from the operating system's CSPRNG.
func CryptoKeys() KeySource {
	return KeySourceFunc(func(size int) []byte {
		key := make([]byte, 0, max(0, size))

		const maxDraw = 1 << 30

		for remaining := size; remaining > 0; {
			n := min(remaining, maxDraw)
			key = append(key, random.GetRandomBytes(uint32(n))...) //nolint:gosec // bounded above

			remaining -= n
		}

		return key
	})
}
