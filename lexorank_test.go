package orderkey

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexorankString(t *testing.T) {
	assert := assert.New(t)

	rk := NewLexorank(1, "a1")
	assert.Equal("1|a1", rk.String())
	assert.Equal(Bucket(1), rk.Bucket())
	assert.Equal("a1", rk.Key())
}

func TestParseLexorank(t *testing.T) {
	assert := assert.New(t)

	rk, err := ParseLexorank("7|a0V")
	assert.NoError(err)
	assert.Equal(Bucket(7), rk.Bucket())
	assert.Equal("a0V", rk.Key())
	assert.Equal("7|a0V", rk.String())

	_, err = ParseLexorank("a0V")
	assert.ErrorIs(err, ErrMalformedKey)
	_, err = ParseLexorank("300|a0")
	assert.ErrorIs(err, ErrMalformedKey)
	_, err = ParseLexorank("x|a0")
	assert.ErrorIs(err, ErrMalformedKey)
	_, err = ParseLexorank("1|a00")
	assert.ErrorIs(err, ErrTrailingZero)
	_, err = ParseLexorank("1|" + SmallestInteger)
	assert.ErrorIs(err, ErrReservedSentinel)
}

func TestLexorankLess(t *testing.T) {
	require := require.New(t)

	ranks := []Lexorank{
		NewLexorank(1, "a1"),
		NewLexorank(0, "a9"),
		NewLexorank(1, "a0V"),
		NewLexorank(0, "a0"),
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Less(ranks[j]) })

	require.Equal("0|a0", ranks[0].String())
	require.Equal("0|a9", ranks[1].String())
	require.Equal("1|a0V", ranks[2].String())
	require.Equal("1|a1", ranks[3].String())
}
