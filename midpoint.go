package orderkey

// midpoint returns a fractional tail strictly between a and b. a == "" is the
// lowest possible tail; b == "" means no upper bound. The caller guarantees
// a < b when both are set. The result never ends in a zero digit: the emitted
// digit always sits strictly above the lower bound's digit at that position.
func midpoint(a, b string) string {
	if b != "" {
		// Walk off the longest common prefix, reading a as zero-padded.
		// b cannot run out first inside the prefix because a < b.
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
				return b[:i] + midpoint("", b[i:])
			}
			return b[:i] + midpoint(a[i:], b[i:])
		}
	}

	// First digits (or lack of digit) differ.
	da := 0
	if a != "" {
		da = digitIndex(a[0])
	}
	db := len(digits)
	if b != "" {
		db = digitIndex(b[0])
	}
	if db-da > 1 {
		return string(digits[(da+db+1)/2])
	}

	// The digits are consecutive, so no symbol fits between them. If b goes
	// on, its first digit alone already sits strictly between.
	if len(b) > 1 {
		return b[:1]
	}

	// Adopt the lower digit and find room one position deeper. For example
	// midpoint("yz", "z") becomes "y" + midpoint("z", ""), which becomes
	// "y" + "z" + midpoint("", ""), which is "yzV".
	rest := ""
	if a != "" {
		rest = a[1:]
	}
	return string(digits[da]) + midpoint(rest, "")
}
