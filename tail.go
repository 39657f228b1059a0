package unpack

import (
	"martianoff/unpack/seq"
	"martianoff/unpack/unpackerr"
)

// matchSuffixBack satisfies the suffix slots by pulling from the back of
// src, rightmost slot first. depth continues the count started by the
// prefix and follows the same accept/reject/exhaustion rules. Whatever the
// two ends leave unconsumed is the middle region.
func matchSuffixBack[T any](slots []Slot[T], src seq.Deque[T], depth int) (int, error) {
	for i := len(slots) - 1; i >= 0; i-- {
		v, ok := src.NextBack()
		if !ok {
			return depth, unpackerr.NewMismatch(depth, "source exhausted before suffix")
		}
		if !slots[i].bind(v) {
			return depth, unpackerr.NewMismatch(depth, "element rejected by suffix slot")
		}
		depth++
	}
	return depth, nil
}
