package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/unpack/seq"
)

func TestFromSliceBothEnds(t *testing.T) {
	s := seq.Of(1, 2, 3, 4, 5)

	v, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = s.NextBack()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = s.NextBack()
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	// The ends meet in the middle.
	assert.Equal(t, []int{2, 3}, seq.Drain[int](s))

	_, ok = s.Next()
	assert.False(t, ok)
	_, ok = s.NextBack()
	assert.False(t, ok)
}

func TestFromSliceEmpty(t *testing.T) {
	s := seq.FromSlice([]int(nil))
	_, ok := s.Next()
	assert.False(t, ok)
	_, ok = s.NextBack()
	assert.False(t, ok)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, seq.Drain[int](seq.Range(0, 4)))

	r := seq.Range(0, 4)
	v, ok := r.NextBack()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{0, 1, 2}, seq.Drain[int](r))

	_, ok = seq.Range(5, 5).Next()
	assert.False(t, ok)
	_, ok = seq.Range(5, 2).Next()
	assert.False(t, ok)
}

func TestFromFunc(t *testing.T) {
	n := 0
	s := seq.FromFunc(func() (int, bool) {
		if n >= 3 {
			return 0, false
		}
		n++
		return n, true
	})
	assert.Equal(t, []int{1, 2, 3}, seq.Drain(s))
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestFromChannel(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	close(ch)
	assert.Equal(t, []string{"a", "b"}, seq.Drain(seq.FromChannel(ch)))
}

func TestForwardOnlyHidesBack(t *testing.T) {
	s := seq.ForwardOnly[int](seq.Range(0, 3))
	_, isDeque := s.(seq.Deque[int])
	assert.False(t, isDeque)
	assert.Equal(t, []int{0, 1, 2}, seq.Drain(s))
}

func TestDrainEmpty(t *testing.T) {
	assert.Nil(t, seq.Drain[int](seq.Of[int]()))
}
