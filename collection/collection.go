// Package collection provides the container contract used when a variable
// middle region collects its elements, plus the two stock containers: an
// ordered growable list and an insertion-ordered set.
package collection

// Collector accepts elements one at a time. Implementations must preserve
// arrival order for ordered containers; set-like containers may drop
// duplicates but must keep first-arrival order for the rest.
type Collector[T any] interface {
	Append(v T)
}

// List is a growable ordered sequence, the default collection target.
type List[T any] struct {
	items []T
}

// NewList creates an empty List.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of collected elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) T {
	return l.items[i]
}

// Values returns the collected elements in arrival order. The returned slice
// is the list's backing store; callers must not hold it across appends.
func (l *List[T]) Values() []T {
	return l.items
}

var _ Collector[int] = (*List[int])(nil)

// Set is a set-like container that remembers first-arrival order.
type Set[T comparable] struct {
	seen  map[T]struct{}
	order []T
}

// NewSet creates an empty Set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{seen: make(map[T]struct{})}
}

func (s *Set[T]) Append(v T) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

// Contains reports whether v has been collected.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of distinct collected elements.
func (s *Set[T]) Len() int {
	return len(s.order)
}

// Values returns the distinct elements in first-arrival order.
func (s *Set[T]) Values() []T {
	return s.order
}

var _ Collector[int] = (*Set[int])(nil)

// Discard is a Collector that drops everything handed to it.
type Discard[T any] struct{}

func (Discard[T]) Append(T) {}

var _ Collector[int] = Discard[int]{}
