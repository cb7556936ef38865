package orderkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket is a namespace for ranks, allowing up to 256 independent orderings
// (for example one per tenant or per parent row).
type Bucket uint8

// Lexorank pairs a bucket with an order key. Ranks in the same bucket sort by
// their key; ranks in different buckets are unrelated.
type Lexorank struct {
	bucket Bucket
	key    string
}

// NewLexorank returns a rank for key within bucket.
func NewLexorank(bucket Bucket, key string) Lexorank {
	return Lexorank{bucket: bucket, key: key}
}

// ParseLexorank parses the "bucket|key" form produced by String. The key part
// is validated as a canonical order key.
func ParseLexorank(s string) (Lexorank, error) {
	b, key, ok := strings.Cut(s, "|")
	if !ok {
		return Lexorank{}, fmt.Errorf("%w: lexorank %q", ErrMalformedKey, s)
	}
	n, err := strconv.ParseUint(b, 10, 8)
	if err != nil {
		return Lexorank{}, fmt.Errorf("%w: lexorank bucket %q", ErrMalformedKey, b)
	}
	if err := Validate(key); err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: Bucket(n), key: key}, nil
}

// String formats the rank as "bucket|key", e.g. "1|a1".
func (rk Lexorank) String() string {
	return fmt.Sprintf("%d|%s", rk.bucket, rk.key)
}

// Bucket returns the rank's namespace.
func (rk Lexorank) Bucket() Bucket { return rk.bucket }

// Key returns the rank's order key.
func (rk Lexorank) Key() string { return rk.key }

// Less reports whether rk sorts before other. Buckets order first, then keys.
func (rk Lexorank) Less(other Lexorank) bool {
	if rk.bucket != other.bucket {
		return rk.bucket < other.bucket
	}
	return rk.key < other.key
}
