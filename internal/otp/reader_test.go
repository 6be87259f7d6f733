package otp_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/trilobyte/internal/otp"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	const chunk = 16

	tests := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "shorter than a chunk", size: 5},
		{name: "exactly one chunk", size: chunk},
		{name: "exact multiple of chunk", size: 4 * chunk},
		{name: "partial final chunk", size: 3*chunk + 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			want := bytes.Repeat([]byte{0x5a}, tc.size)

			got, err := otp.ReadAll(bytes.NewReader(want), chunk)
			require.NoError(t, err)
			assert.Len(t, got, tc.size)
			assert.Equal(t, want, append([]byte{}, got...))
		})
	}
}

func TestReadAllDefaultChunk(t *testing.T) {
	t.Parallel()

	want := bytes.Repeat([]byte("x"), 3*otp.DefaultChunkSize+1)

	got, err := otp.ReadAll(bytes.NewReader(want), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// A short read is taken as the end of input.
func TestReadAllShortReadStops(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("y"), 64)

	got, err := otp.ReadAll(iotest.HalfReader(bytes.NewReader(data)), 16)
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestReadAllDataWithEOF(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("z"), 40)

	got, err := otp.ReadAll(iotest.DataErrReader(bytes.NewReader(data)), 16)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadAllErrorAborts(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken handle")

	_, err := otp.ReadAll(iotest.ErrReader(errBroken), 16)
	require.ErrorIs(t, err, errBroken)

	// Error after a full first chunk: the first chunk is returned alongside the error.
	data := bytes.Repeat([]byte("w"), 64)
	r := io.MultiReader(bytes.NewReader(data[:16]), iotest.ErrReader(errBroken))

	got, err := otp.ReadAll(r, 16)
	require.ErrorIs(t, err, errBroken)
	assert.Len(t, got, 16)
}
