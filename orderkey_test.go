package orderkey

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bnd maps the empty string to an open end, keeping test tables compact.
func bnd(s string) Bound {
	if s == "" {
		return Unbounded()
	}
	return BoundAt(s)
}

func TestKeyBetween(t *testing.T) {
	assert := assert.New(t)

	test := func(a, b, exp string) {
		act, err := KeyBetween(bnd(a), bnd(b))
		assert.NoError(err, "between %q and %q", a, b)
		assert.Equal(exp, act, "between %q and %q", a, b)
	}

	test("", "", "a0")
	test("", "a0", "Zz")
	test("", "Zz", "Zy")
	test("a0", "", "a1")
	test("a1", "", "a2")
	test("a0", "a1", "a0V")
	test("a1", "a2", "a1V")
	test("a0V", "a1", "a0l")
	test("Zz", "a0", "ZzV")
	test("Zz", "a1", "a0")
	test("", "Y00", "Xzzz")
	test("bzz", "", "c000")
	test("a0", "a0V", "a0G")
	test("a0", "a0G", "a08")
	test("b125", "b129", "b127")
	test("a0", "a1V", "a1")
	test("Zz", "a01", "a0")
	test("", "a0V", "a0")
	test("", "b999", "b99")
	test("aV", "aV0V", "aV0G")
	test("", "A000000000000000000000000001", "A000000000000000000000000000V")
	test("zzzzzzzzzzzzzzzzzzzzzzzzzzy", "", "zzzzzzzzzzzzzzzzzzzzzzzzzzz")
	test("zzzzzzzzzzzzzzzzzzzzzzzzzzz", "", "zzzzzzzzzzzzzzzzzzzzzzzzzzzV")
	// Lower-bounding the key one above the sentinel must not surface the
	// sentinel itself; its tail is extended instead.
	test("", "A00000000000000000000000001", "A00000000000000000000000000V")
}

func TestKeyBetweenErrors(t *testing.T) {
	assert := assert.New(t)

	test := func(a, b string, want error) {
		act, err := KeyBetween(bnd(a), bnd(b))
		assert.Empty(act, "between %q and %q", a, b)
		assert.ErrorIs(err, want, "between %q and %q", a, b)
	}

	test("", "A00000000000000000000000000", ErrReservedSentinel)
	test("A00000000000000000000000000", "", ErrReservedSentinel)
	test("a00", "", ErrTrailingZero)
	test("a00", "a1", ErrTrailingZero)
	test("a0", "a1z0", ErrTrailingZero)
	test("0", "1", ErrInvalidHead)
	test("", "!", ErrInvalidHead)
	test("b1", "", ErrMalformedKey)
	test("a1", "a0", ErrInvertedBounds)
	test("a0", "a0", ErrInvertedBounds)
}

func TestNKeysBetween(t *testing.T) {
	assert := assert.New(t)

	test := func(a, b string, n uint, exp string) {
		act, err := NKeysBetween(bnd(a), bnd(b), n)
		assert.NoError(err)
		assert.Equal(exp, strings.Join(act, " "))
	}

	test("", "", 0, "")
	test("", "", 5, "a0 a1 a2 a3 a4")
	test("a4", "", 10, "a5 a6 a7 a8 a9 aA aB aC aD aE")
	test("", "a0", 5, "Zv Zw Zx Zy Zz")
	test(
		"a0",
		"a2",
		20,
		"a04 a08 a0G a0K a0O a0V a0Z a0d a0l a0t a1 a14 a18 a1G a1O a1V a1Z a1d a1l a1t",
	)
}

func TestAppendSequence(t *testing.T) {
	require := require.New(t)

	last := Unbounded()
	prev := ""
	for i := 0; i < 300; i++ {
		k, err := KeyBetween(last, Unbounded())
		require.NoError(err)
		require.NoError(Validate(k))
		require.Greater(k, prev)
		prev = k
		last = BoundAt(k)
	}
}

func TestPrependSequence(t *testing.T) {
	require := require.New(t)

	first := Unbounded()
	prev := ""
	for i := 0; i < 300; i++ {
		k, err := KeyBetween(Unbounded(), first)
		require.NoError(err)
		require.NoError(Validate(k))
		if prev != "" {
			require.Less(k, prev)
		}
		prev = k
		first = BoundAt(k)
	}
}

// TestShuffledInsertions drives the generator the way an application does:
// items are inserted at random positions and the stored keys, sorted by plain
// string comparison, must reproduce the application order.
func TestShuffledInsertions(t *testing.T) {
	require := require.New(t)
	r := rand.New(rand.NewSource(1))

	var keys []string
	for i := 0; i < 500; i++ {
		pos := r.Intn(len(keys) + 1)
		before, after := Unbounded(), Unbounded()
		if pos > 0 {
			before = BoundAt(keys[pos-1])
		}
		if pos < len(keys) {
			after = BoundAt(keys[pos])
		}
		k, err := KeyBetween(before, after)
		require.NoError(err)
		require.NoError(Validate(k))
		keys = append(keys[:pos:pos], append([]string{k}, keys[pos:]...)...)
	}

	require.True(sort.StringsAreSorted(keys))
	for i := 1; i < len(keys); i++ {
		require.Less(keys[i-1], keys[i])
	}
}
