package otp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/trilobyte/internal/otp"
)

func TestKeySourcesLength(t *testing.T) {
	t.Parallel()

	sources := map[string]otp.KeySource{
		"math":   otp.MathKeys(),
		"crypto": otp.CryptoKeys(),
		"seeded": otp.SeededKeys(1),
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, size := range []int{0, 1, 3, 1024, 4097} {
				key := source.Generate(size)
				require.NotNil(t, key)
				assert.Len(t, key, size)
			}
		})
	}
}

func TestSeededKeysDeterministic(t *testing.T) {
	t.Parallel()

	first := otp.SeededKeys(42).Generate(256)
	second := otp.SeededKeys(42).Generate(256)
	other := otp.SeededKeys(43).Generate(256)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestNewKeySource(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", otp.SourceMath, otp.SourceCrypto} {
		source, err := otp.NewKeySource(name)
		require.NoError(t, err, name)
		assert.Len(t, source.Generate(16), 16)
	}

	_, err := otp.NewKeySource("dice")
	require.Error(t, err)
}
