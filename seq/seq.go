// Package seq provides the destructively consumed sequence sources that the
// unpack engine matches against. A source has one of two capability levels:
// Seq supports forward, single-pass consumption only; Deque additionally
// supports consumption from the back.
package seq

// Seq is a forward, single-pass source of elements. Next hands out the next
// element in order, or reports false once the source is exhausted. Elements
// handed out are gone; a Seq is consumed at most once.
type Seq[T any] interface {
	Next() (T, bool)
}

// Deque is a source that can also be consumed from the back. The two ends
// meet in the middle: once Next and NextBack between them have handed out
// every element, both report exhaustion.
type Deque[T any] interface {
	Seq[T]
	NextBack() (T, bool)
}

type sliceSeq[T any] struct {
	items []T
	lo    int
	hi    int // exclusive
}

// Of returns a bidirectional source over the given elements.
func Of[T any](items ...T) Deque[T] {
	return FromSlice(items)
}

// FromSlice returns a bidirectional source over the elements of s. The slice
// itself is not modified; the source tracks its own consumption cursor.
func FromSlice[T any](s []T) Deque[T] {
	return &sliceSeq[T]{items: s, lo: 0, hi: len(s)}
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.lo >= s.hi {
		var zero T
		return zero, false
	}
	v := s.items[s.lo]
	s.lo++
	return v, true
}

func (s *sliceSeq[T]) NextBack() (T, bool) {
	if s.lo >= s.hi {
		var zero T
		return zero, false
	}
	s.hi--
	return s.items[s.hi], true
}

type rangeSeq struct {
	next int
	stop int // exclusive
}

// Range returns a bidirectional source yielding start, start+1, ..., stop-1.
func Range(start, stop int) Deque[int] {
	if stop < start {
		stop = start
	}
	return &rangeSeq{next: start, stop: stop}
}

func (r *rangeSeq) Next() (int, bool) {
	if r.next >= r.stop {
		return 0, false
	}
	v := r.next
	r.next++
	return v, true
}

func (r *rangeSeq) NextBack() (int, bool) {
	if r.next >= r.stop {
		return 0, false
	}
	r.stop--
	return r.stop, true
}

type funcSeq[T any] struct {
	next func() (T, bool)
}

// FromFunc returns a forward-only source driven by next. The function must
// keep reporting false once it has reported false.
func FromFunc[T any](next func() (T, bool)) Seq[T] {
	return &funcSeq[T]{next: next}
}

func (f *funcSeq[T]) Next() (T, bool) {
	return f.next()
}

type chanSeq[T any] struct {
	ch <-chan T
}

// FromChannel returns a forward-only source that receives from ch until the
// channel is closed.
func FromChannel[T any](ch <-chan T) Seq[T] {
	return &chanSeq[T]{ch: ch}
}

func (c *chanSeq[T]) Next() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

type forwardSeq[T any] struct {
	src Seq[T]
}

// ForwardOnly hides the back end of a source, downgrading it to forward-only
// capability. Useful for exercising single-pass behavior over a source that
// would otherwise satisfy Deque.
func ForwardOnly[T any](src Seq[T]) Seq[T] {
	return &forwardSeq[T]{src: src}
}

func (f *forwardSeq[T]) Next() (T, bool) {
	return f.src.Next()
}

// Drain consumes src to exhaustion and returns the remaining elements in
// order.
func Drain[T any](src Seq[T]) []T {
	var out []T
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
