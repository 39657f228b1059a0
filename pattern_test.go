package unpack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/unpack"
	"martianoff/unpack/collection"
	"martianoff/unpack/seq"
)

func TestPatternShape(t *testing.T) {
	var a, b, d int
	var c []int
	p, err := unpack.Of(
		unpack.Bind(&a), unpack.Bind(&b),
		unpack.Collect(&c),
		unpack.Bind(&d),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, p.PrefixLen())
	assert.Equal(t, 1, p.SuffixLen())
	assert.True(t, p.HasMiddle())

	fixed, err := unpack.Of(unpack.Bind(&a))
	require.NoError(t, err)
	assert.Equal(t, 1, fixed.PrefixLen())
	assert.Equal(t, 0, fixed.SuffixLen())
	assert.False(t, fixed.HasMiddle())
}

func TestPatternReuse(t *testing.T) {
	var a, b int
	p, err := unpack.Of(unpack.Bind(&a), unpack.Bind(&b))
	require.NoError(t, err)

	require.NoError(t, unpack.Match(p, seq.Of(1, 2)))
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	require.NoError(t, unpack.Match(p, seq.Of(3, 4)))
	assert.Equal(t, 3, a)
	assert.Equal(t, 4, b)
}

func TestCollectIntoKeepsContainer(t *testing.T) {
	// Caller-supplied containers are not cleared between matches; the
	// caller owns their lifecycle.
	var a int
	l := collection.NewList[int]()
	p, err := unpack.Of(unpack.Bind(&a), unpack.CollectInto[int](l))
	require.NoError(t, err)

	require.NoError(t, unpack.Match(p, seq.Of(0, 1, 2)))
	require.NoError(t, unpack.Match(p, seq.Of(0, 3)))
	assert.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestMatchOutcomeOnFailureLeavesPartialBindings(t *testing.T) {
	var a, b int
	p, err := unpack.Of(unpack.Bind(&a), unpack.Bind(&b), unpack.Check(unpack.Eq(99)))
	require.NoError(t, err)

	a, b = -1, -1
	err = unpack.Match(p, seq.Of(7, 8, 9))
	assert.Equal(t, 2, mismatchDepth(t, err))
	// Slots accepted before the failure have already written through.
	assert.Equal(t, 7, a)
	assert.Equal(t, 8, b)
}
