// Package dsl compiles the textual pattern syntax into a runtime pattern
// over untyped elements. A pattern string is parsed once and the resulting
// Program can be matched against any number of sources.
package dsl

import (
	"martianoff/unpack"
	"martianoff/unpack/seq"
)

// Bindings holds the values bound by a successful match, keyed by the names
// written in the pattern. A collected middle appears as []any, a resumable
// middle as a seq.Seq[any] still holding the unconsumed remainder.
type Bindings map[string]any

// Program is a compiled pattern. It may be matched repeatedly, but not
// concurrently: the compiled slots write into cells owned by the Program.
type Program struct {
	Source string

	pat    *unpack.Pattern[any]
	binds  []func(b Bindings)
	resets []func()
}

// Match destructures src against the compiled pattern. On success it
// returns the bound names; on failure the error from unpack.Match.
func (p *Program) Match(src seq.Seq[any]) (Bindings, error) {
	for _, r := range p.resets {
		r()
	}
	if err := unpack.Match(p.pat, src); err != nil {
		return nil, err
	}
	b := make(Bindings, len(p.binds))
	for _, f := range p.binds {
		f(b)
	}
	return b, nil
}

// PrefixLen returns the fixed arity before the middle region.
func (p *Program) PrefixLen() int {
	return p.pat.PrefixLen()
}

// SuffixLen returns the fixed arity after the middle region.
func (p *Program) SuffixLen() int {
	return p.pat.SuffixLen()
}

// setCollector is the "set" container kind: distinct elements in
// first-arrival order. Elements must be comparable at runtime, which holds
// for everything the literal syntax can produce.
type setCollector struct {
	seen  map[any]struct{}
	order []any
}

func newSetCollector() *setCollector {
	return &setCollector{seen: make(map[any]struct{})}
}

func (s *setCollector) Append(v any) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *setCollector) clear() {
	s.seen = make(map[any]struct{})
	s.order = nil
}

// oneOfGuard accepts an element structurally matched by any alternative.
func oneOfGuard(alts []any) unpack.Guard[any] {
	guards := make([]unpack.Guard[any], len(alts))
	for i, a := range alts {
		guards[i] = unpack.Matches[any](a)
	}
	return func(v any) bool {
		for _, g := range guards {
			if g(v) {
				return true
			}
		}
		return false
	}
}

// rangeGuard accepts integers within the written range. Non-integer
// elements are rejected.
func rangeGuard(lo, hi int, inclusive bool) unpack.Guard[any] {
	return func(v any) bool {
		i, ok := v.(int)
		if !ok {
			return false
		}
		if inclusive {
			return lo <= i && i <= hi
		}
		return lo <= i && i < hi
	}
}
