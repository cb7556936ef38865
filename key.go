package orderkey

import (
	"fmt"
	"strings"
)

// digits is the key alphabet in native byte-sort order, so downstream ORDER BY
// never needs a custom comparator.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	// SmallestInteger is the reserved lower boundary of the integer range.
	// It is a sentinel only and never a valid stored key.
	SmallestInteger = "A00000000000000000000000000"

	// IntegerZero is the canonical key for the first item inserted into an
	// empty collection.
	IntegerZero = "a0"
)

func digitIndex(c byte) int { return strings.IndexByte(digits, c) }

// intLen returns the length of an integer part from its head symbol alone.
// Lowercase heads grow with magnitude, uppercase heads mirror below zero; the
// head's own alphabet position already reflects magnitude and sign-class, so
// integer parts of different lengths still compare correctly as strings.
func intLen(head byte) (int, error) {
	switch {
	case head >= 'a' && head <= 'z':
		return int(head-'a') + 2, nil
	case head >= 'A' && head <= 'Z':
		return int('Z'-head) + 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHead, string(head))
	}
}

// intPart returns the self-delimiting integer prefix of key. The fractional
// tail is whatever follows it.
func intPart(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrMalformedKey)
	}
	n, err := intLen(key[0])
	if err != nil {
		return "", err
	}
	if n > len(key) {
		return "", fmt.Errorf("%w: %s", ErrMalformedKey, key)
	}
	return key[:n], nil
}

// validateInt checks that i is exactly one integer part, no more and no less.
func validateInt(i string) error {
	n, err := intLen(i[0])
	if err != nil {
		return err
	}
	if len(i) != n {
		return fmt.Errorf("%w: integer part %s", ErrMalformedKey, i)
	}
	return nil
}

// Validate checks that key is a well-formed canonical order key: not the
// reserved sentinel, long enough for its declared integer part, and without a
// trailing zero digit on its fractional tail. It is called defensively on
// every externally supplied key before any arithmetic.
func Validate(key string) error {
	if key == SmallestInteger {
		return fmt.Errorf("%w: %s", ErrReservedSentinel, key)
	}
	i, err := intPart(key)
	if err != nil {
		return err
	}
	if strings.HasSuffix(key[len(i):], "0") {
		return fmt.Errorf("%w: %s", ErrTrailingZero, key)
	}
	return nil
}
