package orderkey

import "math/rand"

// Jitter supplies the randomness for the jittered generators. It is an
// interface so tests can pin the outcome (use NoJitter) while production
// callers plug in a seeded *rand.Rand.
type Jitter interface {
	// IntnRange returns a uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter with a zero offset.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return 0 }

// RandJitter is a Jitter backed by *rand.Rand.
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// KeyBetweenJitter picks a key strictly between a and b, with randomization.
// This gives collision resistance when multiple writers generate keys between
// the same pair of neighbors at the same time; the ordering and canonical-form
// guarantees of KeyBetween are unchanged.
func KeyBetweenJitter(a, b Bound, j Jitter, jitterRange int) (string, error) {
	return keyBetween(a, b, func(x, y string) string {
		return midpointJitter(x, y, j, jitterRange)
	})
}

// NKeysBetweenJitter generates n keys between a and b with randomization.
func NKeysBetweenJitter(a, b Bound, n uint, j Jitter, jitterRange int) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	if n == 1 {
		c, err := KeyBetweenJitter(a, b, j, jitterRange)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}
	if b.Open() {
		c, err := KeyBetweenJitter(a, b, j, jitterRange)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, n)
		out = append(out, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = KeyBetweenJitter(BoundAt(c), b, j, jitterRange)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	}
	if a.Open() {
		c, err := KeyBetweenJitter(a, b, j, jitterRange)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, n)
		out = append(out, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = KeyBetweenJitter(a, BoundAt(c), j, jitterRange)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		reverse(out)
		return out, nil
	}
	half := n / 2
	c, err := KeyBetweenJitter(a, b, j, jitterRange)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	left, err := NKeysBetweenJitter(a, BoundAt(c), half, j, jitterRange)
	if err != nil {
		return nil, err
	}
	out = append(out, left...)
	out = append(out, c)
	right, err := NKeysBetweenJitter(BoundAt(c), b, n-half-1, j, jitterRange)
	if err != nil {
		return nil, err
	}
	out = append(out, right...)
	return out, nil
}

// midpointJitter is midpoint with a randomized pick wherever more than one
// digit would do. Every pick stays strictly inside the open interval and off
// the zero digit, so results remain canonical.
func midpointJitter(a, b string, j Jitter, jitterRange int) string {
	if jitterRange < 0 {
		jitterRange = 0
	}
	if b != "" {
		i := 0
		for ; i < len(b); i++ {
			c := byte('0')
			if i < len(a) {
				c = a[i]
			}
			if c != b[i] {
				break
			}
		}
		if i > 0 {
			if i > len(a) {
				return b[:i] + midpointJitter("", b[i:], j, jitterRange)
			}
			return b[:i] + midpointJitter(a[i:], b[i:], j, jitterRange)
		}
	}

	da := 0
	if a != "" {
		da = digitIndex(a[0])
	}
	db := len(digits)
	if b != "" {
		db = digitIndex(b[0])
	}

	// Interior room: pick a digit near the middle, jittered by at most
	// jitterRange alphabet positions and clamped to the open interval.
	if db-da > 1 {
		center := (da + db + 1) / 2
		lo := max(da+1, center-j.IntnRange(0, jitterRange))
		hi := min(db-1, center+j.IntnRange(0, jitterRange))
		if hi > lo {
			return string(digits[j.IntnRange(lo, hi)])
		}
		return string(digits[lo])
	}

	// Consecutive digits: extend under b's next digit when there is room to
	// decorrelate, otherwise b's first digit alone already sits in between.
	if len(b) > 1 {
		upper := digitIndex(b[1]) - 1
		if upper < 1 {
			return b[:1]
		}
		pick := j.IntnRange(1, min(upper, 1+jitterRange))
		if pick < 1 {
			pick = 1
		}
		return b[:1] + string(digits[pick])
	}

	rest := ""
	if a != "" {
		rest = a[1:]
	}
	return string(digits[da]) + midpointJitter(rest, "", j, jitterRange)
}
