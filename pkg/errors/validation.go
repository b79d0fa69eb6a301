package errors

import (
	"strconv"
	"strings"
)

// ParseModulus parses the modulus N typed by a user.
//
// The text must be a non-empty run of ASCII digits (surrounding whitespace is
// ignored) whose value is larger than 1. Signs, decimal points and exponents
// are rejected. When limit is positive, values above it are clamped to limit,
// including values that do not fit in an int. A limit of 0 disables clamping,
// in which case an out-of-range value is rejected.
func ParseModulus(text string, limit int) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, New(ErrCodeInvalidModulus, "N cannot be empty")
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, New(ErrCodeInvalidModulus, "N must be a positive integer, got %q", text)
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		// Only a range error is possible for a digit run.
		if limit > 0 {
			return limit, nil
		}
		return 0, Wrap(ErrCodeInvalidModulus, err, "N is too large")
	}
	if n <= 1 {
		return 0, New(ErrCodeInvalidModulus, "N should be larger than 1, got %d", n)
	}
	if limit > 0 && n > limit {
		return limit, nil
	}
	return n, nil
}

// ValidateModulus checks a modulus handed to the reducer.
func ValidateModulus(modulus int) error {
	if modulus < 1 {
		return New(ErrCodeInvalidModulus, "modulus must be at least 1, got %d", modulus)
	}
	return nil
}

// ValidateBase checks the base of the power tower.
func ValidateBase(base int) error {
	if base < 2 {
		return New(ErrCodeInvalidBase, "tower base must be at least 2, got %d", base)
	}
	return nil
}
