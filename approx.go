package orderkey

import (
	"fmt"
	"math"
)

// Float64Approx converts a key as generated by KeyBetween to a float64.
// Because the range of keys is far larger than float64 can represent
// accurately, this is necessarily approximate. But for many use cases it
// should be, as they say, close enough for jazz.
func Float64Approx(key string) (float64, error) {
	if err := Validate(key); err != nil {
		return 0, err
	}

	ip, err := intPart(key)
	if err != nil {
		return 0, err
	}

	base := float64(len(digits))
	rv := 0.0
	for i := 1; i < len(ip); i++ {
		p := digitIndex(ip[i])
		if p < 0 {
			return 0, fmt.Errorf("%w: %s", ErrMalformedKey, key)
		}
		rv += math.Pow(base, float64(len(ip)-1-i)) * float64(p)
	}

	for i := 0; i < len(key)-len(ip); i++ {
		p := digitIndex(key[len(ip)+i])
		if p < 0 {
			return 0, fmt.Errorf("%w: %s", ErrMalformedKey, key)
		}
		rv += float64(p) / math.Pow(base, float64(i+1))
	}

	if key[0] < 'a' {
		rv = -rv
	}
	return rv, nil
}
