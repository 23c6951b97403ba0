package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultDecimals is used for the native asset when no token is given
	DefaultDecimals = 9
	// MaxDecimals bounds token decimals so amounts fit in uint64
	MaxDecimals = 18
)

var ErrInvalidAmount = errors.New("invalid amount")

// FormatAmount converts integer base units to decimal string without float precision loss
// Example: FormatAmount(24981836, 9) = "0.024981836"
func FormatAmount(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)
	if decimals <= 0 {
		return s
	}

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// ParseAmount converts decimal string to integer base units by removing decimal point
// Example: ParseAmount("0.024981836", 9) = 24981836
// More fractional digits than decimals is an error, not a truncation.
func ParseAmount(s string, decimals int) (uint64, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return 0, fmt.Errorf("%w: decimals must be between 0 and %d", ErrInvalidAmount, MaxDecimals)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	whole, frac, hasPoint := strings.Cut(s, ".")
	if hasPoint && strings.Contains(frac, ".") {
		return 0, fmt.Errorf("%w: invalid decimal format", ErrInvalidAmount)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	if len(frac) > decimals {
		return 0, fmt.Errorf("%w: at most %d decimal places", ErrInvalidAmount, decimals)
	}

	// Pad fractional part to exact decimals, combine and parse
	frac += strings.Repeat("0", decimals-len(frac))
	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return n, nil
}

// ParsePositiveAmount is ParseAmount rejecting zero
func ParsePositiveAmount(s string, decimals int) (uint64, error) {
	n, err := ParseAmount(s, decimals)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
