package orderkey

// Bound designates one side of the range a new key must fall into: either an
// existing neighbor key or an open end of the collection. The zero value is an
// open end.
type Bound struct {
	key string
	set bool
}

// Unbounded returns the open end: no neighbor exists on that side.
func Unbounded() Bound { return Bound{} }

// BoundAt returns a bound at an existing neighbor key.
func BoundAt(key string) Bound { return Bound{key: key, set: true} }

// Open reports whether the bound is an open end.
func (b Bound) Open() bool { return !b.set }

// Key returns the neighbor key and whether one is set.
func (b Bound) Key() (string, bool) { return b.key, b.set }

func (b Bound) String() string {
	if !b.set {
		return "<open>"
	}
	return b.key
}
