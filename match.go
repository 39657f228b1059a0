package unpack

import (
	"errors"

	"martianoff/unpack/collection"
	"martianoff/unpack/seq"
	"martianoff/unpack/unpackerr"
)

// Match destructures src against p. On success every slot destination and
// the middle target have been written and nil is returned. A sequence that
// does not fit returns a *unpackerr.MismatchError; asking a forward-only
// source for a back-consuming middle returns a *unpackerr.UsageError before
// anything is consumed.
//
// Consumption on success follows the middle kind: fixed-arity patterns and
// collecting back-consuming middles drain the source; discarding and
// forward middles with an empty suffix abandon the remainder; Rest hands
// the live remainder back to the caller. On failure the source is left
// partially consumed and slot destinations may hold partial bindings.
func Match[T any](p *Pattern[T], src seq.Seq[T]) error {
	if p.middle == nil {
		depth, err := matchPrefix(p.prefix, src)
		if err != nil {
			return err
		}
		return checkExhausted(src, depth)
	}

	m := p.middle
	var back seq.Deque[T]
	if !m.forward() && len(p.suffix) > 0 {
		var ok bool
		back, ok = src.(seq.Deque[T])
		if !ok {
			return unpackerr.NewUsageError("suffix after this middle needs back consumption; source is forward-only")
		}
	}
	if m.reset != nil {
		m.reset()
	}

	depth, err := matchPrefix(p.prefix, src)
	if err != nil {
		return err
	}

	switch m.kind {
	case midSkip, midCollect:
		if back != nil {
			if _, err := matchSuffixBack(p.suffix, back, depth); err != nil {
				return err
			}
		}
		if m.kind == midCollect {
			for {
				v, ok := src.Next()
				if !ok {
					break
				}
				m.sink.Append(v)
			}
		}
		return nil

	case midRest:
		if back != nil {
			if _, err := matchSuffixBack(p.suffix, back, depth); err != nil {
				return err
			}
		}
		*m.rest = src
		return nil

	default: // midSkipForward, midCollectForward
		sink := m.sink
		if m.kind == midSkipForward {
			sink = collection.Discard[T]{}
		}
		if len(p.suffix) == 0 {
			if m.kind == midCollectForward {
				for {
					v, ok := src.Next()
					if !ok {
						break
					}
					sink.Append(v)
				}
			}
			return nil
		}
		return matchSuffixWindow(p.suffix, src, sink, depth)
	}
}

// Eval matches src against p and runs exactly one of the two continuations,
// unifying their result type: body on success, orElse with the mismatch
// depth on failure. A UsageError is a programming error, not a mismatch,
// and panics.
func Eval[T, R any](p *Pattern[T], src seq.Seq[T], body func() R, orElse func(depth int) R) R {
	err := Match(p, src)
	if err == nil {
		return body()
	}
	if d, ok := Depth(err); ok {
		return orElse(d)
	}
	panic(err)
}

// Depth extracts the mismatch depth from an error returned by Match.
func Depth(err error) (int, bool) {
	var mm *unpackerr.MismatchError
	if errors.As(err, &mm) {
		return mm.Depth, true
	}
	return 0, false
}
