// Package orderkey generates order keys: short strings that encode a position
// in an ordered sequence so that comparing two keys with a plain byte
// comparison reproduces their intended relative order. Keys are generated one
// at a time, whenever an item is inserted at the start, end, or between two
// existing neighbors, without ever rewriting the keys of unrelated items.
//
// A key is an integer part followed by an optional fractional tail, both over
// a fixed base-62 alphabet whose natural ordering equals native string
// ordering. The integer part is self-delimiting: its first symbol alone
// determines its length. The fractional tail makes room for indefinitely many
// keys between two integer-equal keys.
//
// KeyBetween is the strict core: it validates its bounds and reports domain
// errors for malformed or inverted input. Generator wraps it for production
// call sites: it never fails, logging a warning and substituting an
// order-preserving fallback when stored keys turn out to be corrupted.
//
// Consumers must treat keys as opaque: store them verbatim, order collections
// with an ascending string comparison, and never parse their internal
// structure. Uniqueness is the storage layer's concern; two callers asking for
// a key between the same pair of neighbors compute the same result and must be
// deduplicated by a unique index and a retry.
package orderkey
