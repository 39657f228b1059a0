package unpack

import "cmp"

// Guard is a slot predicate. It must be free of side effects; the engine
// evaluates it exactly once per element offered to its slot.
type Guard[T any] func(v T) bool

// Eq accepts only elements equal to want.
func Eq[T comparable](want T) Guard[T] {
	return func(v T) bool {
		return v == want
	}
}

// OneOf accepts elements equal to any of the alternatives.
func OneOf[T comparable](alts ...T) Guard[T] {
	return func(v T) bool {
		for _, a := range alts {
			if v == a {
				return true
			}
		}
		return false
	}
}

// Between accepts elements in the inclusive range [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Guard[T] {
	return func(v T) bool {
		return lo <= v && v <= hi
	}
}

// BetweenExclusive accepts elements in the half-open range [lo, hi).
func BetweenExclusive[T cmp.Ordered](lo, hi T) Guard[T] {
	return func(v T) bool {
		return lo <= v && v < hi
	}
}

// Matches accepts elements structurally matched by pat, using the Unapplier
// protocol with a deep-equality fallback.
func Matches[T any](pat any) Guard[T] {
	return func(v T) bool {
		return unapplyCheck(v, pat)
	}
}
