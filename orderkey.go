package orderkey

import (
	"errors"
	"fmt"
)

// KeyBetween returns a key that sorts lexicographically strictly between a
// and b. An open a means there is no smaller key, an open b no larger key.
// Both bounds are validated, and b must be open or greater than a; violations
// are reported as domain errors, never guessed around. Production call sites
// that must not fail should go through Generator instead.
func KeyBetween(a, b Bound) (string, error) {
	return keyBetween(a, b, midpoint)
}

// keyBetween is the orchestrator, parameterized over the bisection so the
// jittered variant can share it.
func keyBetween(a, b Bound, mid func(a, b string) string) (string, error) {
	ak, aset := a.Key()
	bk, bset := b.Key()
	if aset {
		if err := Validate(ak); err != nil {
			return "", err
		}
	}
	if bset {
		if err := Validate(bk); err != nil {
			return "", err
		}
	}
	if aset && bset && ak >= bk {
		return "", fmt.Errorf("%w: %s >= %s", ErrInvertedBounds, ak, bk)
	}
	switch {
	case !aset && !bset:
		return IntegerZero, nil
	case !aset:
		return keyBefore(bk, mid)
	case !bset:
		return keyAfter(ak, mid)
	}
	return keyInside(ak, bk, mid)
}

// keyBefore picks a key below b: the integer part of b when that already
// sorts below it, otherwise the previous integer. When there is no previous
// integer the only room left is inside b's fractional tail.
func keyBefore(b string, mid func(a, b string) string) (string, error) {
	ib, err := intPart(b)
	if err != nil {
		return "", err
	}
	fb := b[len(ib):]
	if ib < b && ib != SmallestInteger {
		return ib, nil
	}
	dec, err := decrementInt(ib)
	if errors.Is(err, ErrUnderflow) {
		return ib + mid("", fb), nil
	}
	if err != nil {
		return "", err
	}
	if dec == SmallestInteger {
		// The sentinel is reserved and must never become a stored key. Its
		// tail has room for any number of keys below b.
		return dec + mid("", ""), nil
	}
	return dec, nil
}

// keyAfter picks the next integer above a, falling back to extending a's
// fractional tail when the integer range is exhausted.
func keyAfter(a string, mid func(a, b string) string) (string, error) {
	ia, err := intPart(a)
	if err != nil {
		return "", err
	}
	fa := a[len(ia):]
	inc, err := incrementInt(ia)
	if errors.Is(err, ErrOverflow) {
		return ia + mid(fa, ""), nil
	}
	if err != nil {
		return "", err
	}
	return inc, nil
}

// keyInside handles two present bounds. Equal integer parts bisect the
// fractional tails; otherwise the next integer after a is used when it still
// sorts below b, and a's own tail is extended when it does not — that result
// shares a's integer part, which is strictly less than b's.
func keyInside(a, b string, mid func(a, b string) string) (string, error) {
	ia, err := intPart(a)
	if err != nil {
		return "", err
	}
	fa := a[len(ia):]
	ib, err := intPart(b)
	if err != nil {
		return "", err
	}
	fb := b[len(ib):]
	if ia == ib {
		return ia + mid(fa, fb), nil
	}
	inc, err := incrementInt(ia)
	if errors.Is(err, ErrOverflow) {
		return ia + mid(fa, ""), nil
	}
	if err != nil {
		return "", err
	}
	if inc < b {
		return inc, nil
	}
	return ia + mid(fa, ""), nil
}

// NKeysBetween returns n keys sorting strictly between a and b, in ascending
// order. Closed ranges are filled by balanced bisection so key lengths stay
// short; open ranges are walked outward one key at a time.
func NKeysBetween(a, b Bound, n uint) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	if n == 1 {
		c, err := KeyBetween(a, b)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}
	if b.Open() {
		c, err := KeyBetween(a, b)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = KeyBetween(BoundAt(c), b)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		return result, nil
	}
	if a.Open() {
		c, err := KeyBetween(a, b)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = KeyBetween(a, BoundAt(c))
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		reverse(result)
		return result, nil
	}
	mid := n / 2
	c, err := KeyBetween(a, b)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, n)
	left, err := NKeysBetween(a, BoundAt(c), mid)
	if err != nil {
		return nil, err
	}
	result = append(result, left...)
	result = append(result, c)
	right, err := NKeysBetween(BoundAt(c), b, n-mid-1)
	if err != nil {
		return nil, err
	}
	result = append(result, right...)
	return result, nil
}

func reverse(values []string) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
