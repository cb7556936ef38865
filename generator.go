package orderkey

import (
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// highDigit is appended to a lower bound in degraded mode. Any suffix sorts
// strictly above the bound it extends; the highest digit leaves the most room
// above for subsequent inserts.
const highDigit = "z"

// Generator is the production entry point for key generation. It never fails:
// when a stored key turns out to be corrupted or a pair of bounds is inverted,
// it logs a warning and substitutes a fallback that preserves order as well as
// possible instead of refusing to place the item.
//
// Fallback keys can be longer than minimal and, on the timestamp paths, are
// not deterministic. They still sort correctly and re-parse on later calls,
// but callers must not assume degraded output matches the length or shape of
// canonical output.
type Generator struct {
	log   *zap.SugaredLogger
	stamp func() string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger routes degraded-mode warnings to log. The default discards them.
func WithLogger(log *zap.SugaredLogger) GeneratorOption {
	return func(g *Generator) { g.log = log }
}

// WithStamp overrides the timestamp token used in fallback keys. Tokens must
// be drawn from the key alphabet and must not end in the zero digit.
func WithStamp(stamp func() string) GeneratorOption {
	return func(g *Generator) { g.stamp = stamp }
}

// NewGenerator returns a Generator with the given options applied.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		log:   zap.NewNop().Sugar(),
		stamp: ulidStamp,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ulidStamp returns a millisecond-ordered 26-symbol token. ULID text is
// Crockford base32, a strict subset of the key alphabet, so it sorts by time
// under the same byte comparison as every other key. The final symbol is
// patched off the zero digit so appended tokens keep tails canonical.
func ulidStamp() string {
	s := []byte(ulid.Make().String())
	if s[len(s)-1] == '0' {
		s[len(s)-1] = '1'
	}
	return string(s)
}

// AtStart returns a key sorting before the collection's current first key,
// or the canonical zero key when the collection is empty.
func (g *Generator) AtStart(first Bound) string {
	return g.Between(Unbounded(), first)
}

// AtEnd returns a key sorting after the collection's current last key,
// or the canonical zero key when the collection is empty.
func (g *Generator) AtEnd(last Bound) string {
	return g.Between(last, Unbounded())
}

// Between returns a key sorting between two neighbor keys, either of which
// may be open. Unlike KeyBetween it never fails.
func (g *Generator) Between(before, after Bound) string {
	key, err := KeyBetween(before, after)
	if err == nil {
		return key
	}
	g.log.Warnw("order key generation failed, using fallback",
		"before", before.String(),
		"after", after.String(),
		"error", err,
	)
	return g.fallback(before, after)
}

// fallback produces an order-preserving substitute from whatever parts of the
// bounds are usable. A well-formed lower bound wins: the result is always a
// strict extension of it. With only a well-formed upper bound, a fresh key in
// the smallest integer class sorts before any normally generated key.
func (g *Generator) fallback(before, after Bound) string {
	bk, bset := before.Key()
	lower := bset && Validate(bk) == nil
	ak, aset := after.Key()
	upper := aset && Validate(ak) == nil

	switch {
	case lower && upper:
		if k := bk + highDigit; k < ak {
			return k
		}
		return mustAbove(bk, bk+g.stamp())
	case lower:
		return mustAbove(bk, bk+highDigit)
	case upper:
		return "A" + g.stamp()
	}
	return IntegerZero
}

// mustAbove asserts that a fallback key kept its ordering claim. A violation
// is a bug in the fallback itself, not bad input, and is not recoverable.
func mustAbove(lower, key string) string {
	if key <= lower {
		panic("orderkey: fallback produced a key not above its lower bound")
	}
	return key
}
