package otp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/trilobyte/internal/otp"
)

func TestParseGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		first  string
		second string
		want   otp.GenerateRequest
	}{
		{name: "size first", first: "32", second: "pad.txt", want: otp.GenerateRequest{Size: 32, Name: "pad.txt"}},
		{name: "name first", first: "pad.txt", second: "32", want: otp.GenerateRequest{Size: 32, Name: "pad.txt"}},
		{name: "zero size", first: "0", second: "empty", want: otp.GenerateRequest{Size: 0, Name: "empty"}},
		{name: "numeric name", first: "16", second: "2024", want: otp.GenerateRequest{Size: 16, Name: "2024"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := otp.ParseGenerate(tc.first, tc.second)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseGenerateInvalidSize(t *testing.T) {
	t.Parallel()

	for _, args := range [][2]string{{"big", "pad.txt"}, {"-4", "pad.txt"}, {"pad.txt", "1e3"}} {
		_, err := otp.ParseGenerate(args[0], args[1])
		require.ErrorIs(t, err, otp.ErrInvalidSize, args)

		var otpErr *otp.Error
		require.ErrorAs(t, err, &otpErr)
		assert.Equal(t, otp.Generation, otpErr.Family)
		assert.Equal(t, otp.CodeInvalidSize, otpErr.Code)
	}
}

func TestParseGenerateNoName(t *testing.T) {
	t.Parallel()

	for _, args := range [][2]string{{"8", ""}, {"", "8"}, {"8", "  "}} {
		_, err := otp.ParseGenerate(args[0], args[1])
		require.ErrorIs(t, err, otp.ErrNoName, args)

		var otpErr *otp.Error
		require.ErrorAs(t, err, &otpErr)
		assert.Equal(t, otp.Generation, otpErr.Family)
		assert.Equal(t, otp.CodeNoName, otpErr.Code)
	}
}

func TestGenerateRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, otp.GenerateRequest{Size: 0, Name: "empty"}.Validate())
	require.ErrorIs(t, otp.GenerateRequest{Size: 4}.Validate(), otp.ErrNoName)
	require.ErrorIs(t, otp.GenerateRequest{Size: -1, Name: "k"}.Validate(), otp.ErrInvalidSize)
}

func TestPairDecrypt(t *testing.T) {
	t.Parallel()

	want := otp.PairRequest{Data: "report.txt.csd", Key: "report.cef"}

	got, err := otp.PairDecrypt("report.txt.csd", "report.cef")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = otp.PairDecrypt("report.cef", "report.txt.csd")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, args := range [][2]string{{"a.csd", "b.csd"}, {"a.cef", "b.cef"}, {"a.txt", "b.cef"}, {"a", "b"}} {
		_, err := otp.PairDecrypt(args[0], args[1])
		require.ErrorIs(t, err, otp.ErrNotAPair, args)
		assert.Equal(t, otp.CodeNotAPair, otp.CodeOf(err))
	}
}

func TestPairSeal(t *testing.T) {
	t.Parallel()

	want := otp.PairRequest{Data: "data.bin", Key: "pad.cef"}

	got, err := otp.PairSeal("data.bin", "pad.cef")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = otp.PairSeal("pad.cef", "data.bin")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, args := range [][2]string{{"a.cef", "b.cef"}, {"a.txt", "b.txt"}} {
		_, err := otp.PairSeal(args[0], args[1])
		require.ErrorIs(t, err, otp.ErrNotAPair, args)

		var otpErr *otp.Error
		require.ErrorAs(t, err, &otpErr)
		assert.Equal(t, otp.Encryption, otpErr.Family)
	}
}
