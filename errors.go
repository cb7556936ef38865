package orderkey

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// tell caller bugs (ErrInvertedBounds) from corrupted stored keys
// (ErrInvalidHead, ErrMalformedKey, ErrTrailingZero) and from range
// exhaustion (ErrOverflow, ErrUnderflow). Errors are wrapped with the
// offending input where one exists.
var (
	ErrInvalidHead      = errors.New("invalid order key head")
	ErrMalformedKey     = errors.New("invalid order key")
	ErrReservedSentinel = errors.New("reserved order key")
	ErrTrailingZero     = errors.New("order key has trailing zero digit")
	ErrInvertedBounds   = errors.New("order key bounds inverted")
	ErrOverflow         = errors.New("order key range overflow")
	ErrUnderflow        = errors.New("order key range underflow")
)
