// Package unpack destructures ordered sequences against a structural
// pattern: a fixed prefix of slots, at most one variable-length middle
// region, and a fixed suffix of slots. Matched elements are written through
// caller-supplied pointers; a sequence that does not fit reports a
// MismatchError carrying the match depth.
package unpack

import (
	"martianoff/unpack/collection"
	"martianoff/unpack/seq"
	"martianoff/unpack/unpackerr"
)

// Item is one comma-position of a pattern: either a slot or a middle marker.
// Items are built with the constructor functions in this package.
type Item[T any] interface {
	addTo(p *Pattern[T]) error
}

// Slot is a single fixed position in the prefix or suffix of a pattern. It
// tests one element and, on acceptance, writes it to its destination.
type Slot[T any] struct {
	dst   *T       // nil discards the value
	guard Guard[T] // nil accepts any element
}

// Bind creates a slot that accepts any element and stores it in dst.
func Bind[T any](dst *T) Item[T] {
	return Slot[T]{dst: dst}
}

// Discard creates a slot that accepts any element and drops it.
func Discard[T any]() Item[T] {
	return Slot[T]{}
}

// BindIf creates a slot that stores the element in dst only if g accepts it;
// a rejected element fails the whole match at that position.
func BindIf[T any](dst *T, g Guard[T]) Item[T] {
	return Slot[T]{dst: dst, guard: g}
}

// Check creates a slot that tests the element against g and discards it.
func Check[T any](g Guard[T]) Item[T] {
	return Slot[T]{guard: g}
}

// bind is the test-and-bind contract: the guard runs exactly once per
// offered element, and the destination is written only on acceptance.
func (s Slot[T]) bind(e T) bool {
	if s.guard != nil && !s.guard(e) {
		return false
	}
	if s.dst != nil {
		*s.dst = e
	}
	return true
}

func (s Slot[T]) addTo(p *Pattern[T]) error {
	if p.middle != nil {
		p.suffix = append(p.suffix, s)
	} else {
		p.prefix = append(p.prefix, s)
	}
	return nil
}

type middleKind int

const (
	midSkip           middleKind = iota // discard, consuming the back for the suffix
	midCollect                          // collect, consuming the back for the suffix
	midRest                             // bind the live residual source
	midSkipForward                      // discard over a forward-only pass
	midCollectForward                   // collect over a forward-only pass
)

type middle[T any] struct {
	kind  middleKind
	sink  collection.Collector[T]
	rest  *seq.Seq[T]
	reset func()
}

func (m *middle[T]) addTo(p *Pattern[T]) error {
	if p.middle != nil {
		return unpackerr.NewUsageError("pattern has more than one variable middle")
	}
	p.middle = m
	return nil
}

// forward reports whether the middle runs over a single forward pass.
func (m *middle[T]) forward() bool {
	return m.kind == midSkipForward || m.kind == midCollectForward
}

type sliceCollector[T any] struct {
	dst *[]T
}

func (c sliceCollector[T]) Append(v T) {
	*c.dst = append(*c.dst, v)
}

// Skip creates a middle marker that discards the middle elements. The suffix
// is taken from the back of the source, which must be a seq.Deque when the
// suffix is non-empty.
func Skip[T any]() Item[T] {
	return &middle[T]{kind: midSkip}
}

// Collect creates a middle marker that collects the middle elements, in
// encounter order, into dst. Any previous contents of dst are dropped when a
// match starts. The suffix is taken from the back of the source.
func Collect[T any](dst *[]T) Item[T] {
	return &middle[T]{
		kind:  midCollect,
		sink:  sliceCollector[T]{dst: dst},
		reset: func() { *dst = nil },
	}
}

// CollectInto is Collect with a caller-supplied container. The container is
// not cleared between matches; the caller owns its lifecycle.
func CollectInto[T any](c collection.Collector[T]) Item[T] {
	return &middle[T]{kind: midCollect, sink: c}
}

// Rest creates a middle marker that binds the still-live source itself to
// dst after the prefix and suffix have been satisfied. No exhaustion check
// is performed; the caller consumes the remainder.
func Rest[T any](dst *seq.Seq[T]) Item[T] {
	return &middle[T]{kind: midRest, rest: dst}
}

// SkipForward is Skip for sources that only support forward consumption.
// The suffix is recovered with a single-pass sliding window instead of
// consuming the back.
func SkipForward[T any]() Item[T] {
	return &middle[T]{kind: midSkipForward}
}

// CollectForward is Collect for sources that only support forward
// consumption.
func CollectForward[T any](dst *[]T) Item[T] {
	return &middle[T]{
		kind:  midCollectForward,
		sink:  sliceCollector[T]{dst: dst},
		reset: func() { *dst = nil },
	}
}

// CollectForwardInto is CollectInto for sources that only support forward
// consumption.
func CollectForwardInto[T any](c collection.Collector[T]) Item[T] {
	return &middle[T]{kind: midCollectForward, sink: c}
}

// Pattern is an immutable destructuring shape: fixed prefix slots, at most
// one middle region, fixed suffix slots. Build one with Of and reuse it
// across matches; a Pattern is not safe for concurrent matches because its
// slots write through shared destinations.
type Pattern[T any] struct {
	prefix []Slot[T]
	middle *middle[T]
	suffix []Slot[T]
}

// Of assembles a pattern from items in written order. Slots before the
// middle marker form the prefix, slots after it the suffix. A second middle
// marker is a UsageError.
func Of[T any](items ...Item[T]) (*Pattern[T], error) {
	p := &Pattern[T]{}
	for _, it := range items {
		if err := it.addTo(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// PrefixLen returns the fixed arity before the middle region.
func (p *Pattern[T]) PrefixLen() int {
	return len(p.prefix)
}

// SuffixLen returns the fixed arity after the middle region.
func (p *Pattern[T]) SuffixLen() int {
	return len(p.suffix)
}

// HasMiddle reports whether the pattern contains a variable middle region.
func (p *Pattern[T]) HasMiddle() bool {
	return p.middle != nil
}
