package unpack

import (
	"martianoff/unpack/collection"
	"martianoff/unpack/seq"
	"martianoff/unpack/unpackerr"
)

// matchSuffixWindow recovers a fixed-length suffix from a forward-only
// source in a single pass, using a circular buffer of suffix arity. Every
// element evicted from the buffer belongs to the middle region and reaches
// sink in its original stream order. When the source is exhausted the
// buffer holds the last k elements rotated by the cursor; rotating left by
// the cursor restores stream order before the suffix slots are applied.
//
// Depth reporting: exhaustion while filling the buffer reports depth plus
// the number of elements actually pulled; a slot rejecting the final window
// reports depth plus the full suffix arity, since the window does not track
// positions individually.
func matchSuffixWindow[T any](slots []Slot[T], src seq.Seq[T], sink collection.Collector[T], depth int) error {
	k := len(slots)
	buf := make([]T, k)
	for i := 0; i < k; i++ {
		v, ok := src.Next()
		if !ok {
			return unpackerr.NewMismatch(depth+i, "source exhausted before suffix")
		}
		buf[i] = v
	}

	j := 0
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		sink.Append(buf[j])
		buf[j] = v
		j++
		j %= k
	}

	rotateLeft(buf, j)
	for i, s := range slots {
		if !s.bind(buf[i]) {
			return unpackerr.NewMismatch(depth+k, "element rejected by suffix slot")
		}
	}
	return nil
}

// rotateLeft rotates s in place so that s[n] becomes the first element.
func rotateLeft[T any](s []T, n int) {
	if n == 0 {
		return
	}
	tmp := make([]T, n)
	copy(tmp, s[:n])
	copy(s, s[n:])
	copy(s[len(s)-n:], tmp)
}
