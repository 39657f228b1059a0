package unpack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/unpack"
	"martianoff/unpack/seq"
)

func TestEq(t *testing.T) {
	g := unpack.Eq("a")
	assert.True(t, g("a"))
	assert.False(t, g("b"))
}

func TestOneOf(t *testing.T) {
	g := unpack.OneOf(0, 1, 2)
	assert.True(t, g(0))
	assert.True(t, g(2))
	assert.False(t, g(3))

	assert.False(t, unpack.OneOf[int]()(0))
}

func TestBetween(t *testing.T) {
	g := unpack.Between(2, 10)
	assert.False(t, g(1))
	assert.True(t, g(2))
	assert.True(t, g(10))
	assert.False(t, g(11))
}

func TestBetweenExclusive(t *testing.T) {
	g := unpack.BetweenExclusive(2, 10)
	assert.True(t, g(2))
	assert.True(t, g(9))
	assert.False(t, g(10))
}

func TestMatchesLiteral(t *testing.T) {
	g := unpack.Matches[any](5)
	assert.True(t, g(5))
	assert.False(t, g(6))
	assert.False(t, g("5"))
}

type evenPattern struct{}

func (evenPattern) Unapply(v any) bool {
	n, ok := v.(int)
	return ok && n%2 == 0
}

func TestMatchesUnapplier(t *testing.T) {
	g := unpack.Matches[int](evenPattern{})
	assert.True(t, g(4))
	assert.False(t, g(5))
}

func TestGuardEvaluatedOncePerElement(t *testing.T) {
	calls := make(map[int]int)
	counting := func(v int) bool {
		calls[v]++
		return true
	}

	var a int
	p, err := unpack.Of(
		unpack.BindIf(&a, unpack.Guard[int](counting)),
		unpack.Check(unpack.Guard[int](counting)),
		unpack.Skip[int](),
		unpack.Check(unpack.Guard[int](counting)),
	)
	require.NoError(t, err)

	require.NoError(t, unpack.Match(p, seq.Range(0, 6)))
	assert.Equal(t, map[int]int{0: 1, 1: 1, 5: 1}, calls)
}

func TestWindowGuardEvaluatedOncePerElement(t *testing.T) {
	calls := 0
	counting := func(v int) bool {
		calls++
		return true
	}

	p, err := unpack.Of(
		unpack.SkipForward[int](),
		unpack.Check(unpack.Guard[int](counting)), unpack.Check(unpack.Guard[int](counting)),
	)
	require.NoError(t, err)

	// Evicted elements never touch the suffix guards; only the final
	// window is tested, one evaluation per slot.
	require.NoError(t, unpack.Match(p, seq.ForwardOnly[int](seq.Range(0, 20))))
	assert.Equal(t, 2, calls)
}
