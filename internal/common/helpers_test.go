package common

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value    uint64
		decimals int
		want     string
	}{
		{24981836, 9, "0.024981836"},
		{1500000000, 9, "1.500000000"},
		{0, 6, "0.000000"},
		{42, 0, "42"},
		{1, 2, "0.01"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatAmount(tt.value, tt.decimals))
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in       string
		decimals int
		want     uint64
		wantErr  bool
	}{
		{"0.024981836", 9, 24981836, false},
		{"1.5", 9, 1500000000, false},
		{"10", 6, 10000000, false},
		{".5", 2, 50, false},
		{" 3 ", 0, 3, false},
		{"", 9, 0, true},
		{"1.2.3", 9, 0, true},
		{"-1", 9, 0, true},
		{"1e5", 9, 0, true},
		{"0.0000001", 6, 0, true},
		{"1", 19, 0, true},
		{"99999999999999999999", 9, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in, tt.decimals)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	_, err := ParsePositiveAmount("0.000", 9)
	require.ErrorIs(t, err, ErrInvalidAmount)

	n, err := ParsePositiveAmount("0.001", 3)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)
}

func TestValidateAddress(t *testing.T) {
	require.NoError(t, ValidateAddress(NetworkSolana, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"))
	require.ErrorIs(t, ValidateAddress(NetworkSolana, "not-base58-0OIl"), ErrInvalidAddress)
	require.ErrorIs(t, ValidateAddress(NetworkSolana, ""), ErrInvalidAddress)

	require.NoError(t, ValidateAddress("custom", "anything"))
	require.ErrorIs(t, ValidateAddress("custom", "  "), ErrInvalidAddress)
}

func TestQRCodeBase64(t *testing.T) {
	out, err := QRCodeBase64("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	require.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
