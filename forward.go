package unpack

import (
	"martianoff/unpack/seq"
	"martianoff/unpack/unpackerr"
)

// matchPrefix pulls one element per slot from the front of src, in written
// order. The returned depth counts elements that were pulled and accepted;
// an exhausted source or a rejected element stops the match with that depth.
func matchPrefix[T any](slots []Slot[T], src seq.Seq[T]) (int, error) {
	depth := 0
	for _, s := range slots {
		v, ok := src.Next()
		if !ok {
			return depth, unpackerr.NewMismatch(depth, "source exhausted before pattern")
		}
		if !s.bind(v) {
			return depth, unpackerr.NewMismatch(depth, "element rejected by slot")
		}
		depth++
	}
	return depth, nil
}

// checkExhausted is the trailing peek for fixed-arity patterns: one extra
// pull distinguishes an exact fit from excess elements. Excess reports the
// full fixed arity as depth, not the count of excess elements.
func checkExhausted[T any](src seq.Seq[T], arity int) error {
	if _, ok := src.Next(); ok {
		return unpackerr.NewMismatch(arity, "source yields more elements than pattern")
	}
	return nil
}
