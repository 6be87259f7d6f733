package otp

import "fmt"

// Xor returns data XOR key, byte by byte. Key bytes past len(data) are unused.
// Applying Xor twice with the same key yields the original data.
func Xor(data, key []byte) ([]byte, error) {
	if len(data) > len(key) {
		return nil, fmt.Errorf("%w: %d data bytes, %d key bytes", ErrKeyTooShort, len(data), len(key))
	}

	out := make([]byte, len(data))

	for i := range data {
		out[i] = data[i] ^ key[i]
	}

	return out, nil
}
