package common

import (
	"fmt"
	"math/big"
	"strings"
)

func pow10(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// FormatBigWithDecimals renders a raw token amount as a decimal string,
// trimming trailing zeros from the fractional part.
// FormatBigWithDecimals(1500000, 6) = "1.5"
func FormatBigWithDecimals(value *big.Int, decimals uint8) string {
	if value == nil || value.Sign() == 0 {
		return "0"
	}

	divisor := pow10(decimals)
	whole := new(big.Int)
	remainder := new(big.Int)
	whole.QuoRem(value, divisor, remainder)

	if remainder.Sign() == 0 {
		return whole.String()
	}

	frac := fmt.Sprintf("%0*s", decimals, remainder.String())
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return whole.String()
	}
	return fmt.Sprintf("%s.%s", whole.String(), frac)
}

// ParseDecimalString is the inverse of FormatBigWithDecimals: it converts a
// decimal string back to the raw amount at the given decimal count. The
// fractional part must fit into decimals digits.
func ParseDecimalString(s string, decimals uint8) (*big.Int, error) {
	wholeStr, fracStr, _ := strings.Cut(s, ".")
	if wholeStr == "" {
		wholeStr = "0"
	}
	if len(fracStr) > int(decimals) {
		return nil, fmt.Errorf("%q has more than %d fractional digits", s, decimals)
	}

	whole, ok := new(big.Int).SetString(wholeStr, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal number", s)
	}
	result := whole.Mul(whole, pow10(decimals))

	if fracStr != "" {
		// right-pad the fraction to the full decimal width
		padded := fracStr + strings.Repeat("0", int(decimals)-len(fracStr))
		frac, ok := new(big.Int).SetString(padded, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not a decimal number", s)
		}
		result.Add(result, frac)
	}
	return result, nil
}
