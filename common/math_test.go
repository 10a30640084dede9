package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBigWithDecimals(t *testing.T) {
	cases := []struct {
		value    string
		decimals uint8
		expected string
	}{
		{"0", 18, "0"},
		{"1500000", 6, "1.5"},
		{"1000000", 6, "1"},
		{"1", 6, "0.000001"},
		{"1000000000000000000", 18, "1"},
		{"1234500000000000000", 18, "1.2345"},
		{"21000000000000", 18, "0.000021"},
		{"123", 0, "123"},
	}
	for _, c := range cases {
		value, ok := new(big.Int).SetString(c.value, 10)
		require.True(t, ok)
		assert.Equal(t, c.expected, FormatBigWithDecimals(value, c.decimals), "value %s decimals %d", c.value, c.decimals)
	}
}

func TestParseDecimalString(t *testing.T) {
	cases := []struct {
		input    string
		decimals uint8
		expected string
	}{
		{"1.5", 6, "1500000"},
		{"0.000001", 6, "1"},
		{"1", 18, "1000000000000000000"},
		{"1.2345", 18, "1234500000000000000"},
		{"123", 0, "123"},
	}
	for _, c := range cases {
		result, err := ParseDecimalString(c.input, c.decimals)
		require.NoError(t, err, "input %s", c.input)
		assert.Equal(t, c.expected, result.String(), "input %s", c.input)
	}
}

func TestParseDecimalStringRejectsTooManyFractionDigits(t *testing.T) {
	_, err := ParseDecimalString("1.2345678", 6)
	require.Error(t, err)

	_, err = ParseDecimalString("abc", 6)
	require.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, raw := range []string{"1", "1500000", "123456789012345678901234567890"} {
		value, ok := new(big.Int).SetString(raw, 10)
		require.True(t, ok)

		formatted := FormatBigWithDecimals(value, 18)
		back, err := ParseDecimalString(formatted, 18)
		require.NoError(t, err)
		assert.Equal(t, 0, value.Cmp(back), "round trip of %s via %q", raw, formatted)
	}
}

func TestTxTypeString(t *testing.T) {
	assert.Equal(t, "Legacy (Type 0)", TxTypeLegacy.String())
	assert.Equal(t, "Access List (Type 1)", TxTypeAccessList.String())
	assert.Equal(t, "EIP-1559 (Type 2)", TxTypeDynamicFee.String())
	assert.Equal(t, "Blob (Type 3)", TxTypeBlob.String())
	assert.Equal(t, "Unknown (Type 100)", TxType(100).String())
}
