package dsl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"martianoff/unpack"
	"martianoff/unpack/seq"
	"martianoff/unpack/unpackerr"
)

// Compile parses pattern text into a Program. The syntax is a comma
// separated list of elements, with at most one middle marker among them:
//
//	a, b, *c, d, e          bind a and b, collect the middle, bind d and e
//	_, 2..=10, (0|1|2)      discard, range guard, alternation guard
//	x, *rest: set, y        collect the middle into a set
//	x, *=rest, y            bind the live remainder instead of collecting
//	x, **mid, y             collect over a single forward pass
//
// A trailing comma is tolerated.
func Compile(text string) (*Program, error) {
	c := &compiler{
		prog:  &Program{Source: text},
		names: make(map[string]struct{}),
	}
	items, err := splitItems(text)
	if err != nil {
		return nil, err
	}
	parts := make([]unpack.Item[any], 0, len(items))
	for _, it := range items {
		part, err := c.compileItem(it)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	pat, err := unpack.Of(parts...)
	if err != nil {
		// Middle duplication is caught above; anything else is unexpected.
		return nil, unpackerr.NewSyntaxError(0, err.Error())
	}
	c.prog.pat = pat
	return c.prog, nil
}

type item struct {
	text string
	pos  int
}

// splitItems cuts the pattern text at top-level commas, keeping byte
// offsets for error reporting. Parentheses group alternations and must be
// balanced; one trailing comma is allowed.
func splitItems(text string) ([]item, error) {
	var items []item
	depth := 0
	start := 0
	flush := func(end int) {
		seg := text[start:end]
		trimmed := strings.TrimSpace(seg)
		pos := start + strings.Index(seg, trimmed)
		items = append(items, item{text: trimmed, pos: pos})
	}
	inStr := false
	esc := false
	for i, r := range text {
		if inStr {
			switch {
			case esc:
				esc = false
			case r == '\\':
				esc = true
			case r == '"':
				inStr = false
			}
			continue
		}
		switch r {
		case '"':
			inStr = true
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, unpackerr.NewSyntaxError(i, "unbalanced ')'")
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	if inStr {
		return nil, unpackerr.NewSyntaxError(len(text), "unclosed string literal")
	}
	if depth != 0 {
		return nil, unpackerr.NewSyntaxError(len(text), "unclosed '('")
	}
	flush(len(text))

	// Drop the segment after a trailing comma, or the whole list when the
	// pattern is empty.
	if last := len(items) - 1; items[last].text == "" {
		if last == 0 {
			return nil, nil
		}
		items = items[:last]
	}
	for _, it := range items {
		if it.text == "" {
			return nil, unpackerr.NewSyntaxError(it.pos, "empty pattern element")
		}
	}
	return items, nil
}

type compiler struct {
	prog    *Program
	names   map[string]struct{}
	midSeen bool
}

func (c *compiler) compileItem(it item) (unpack.Item[any], error) {
	text := it.text
	switch {
	case strings.HasPrefix(text, "**"):
		if err := c.declareMiddle(it.pos); err != nil {
			return nil, err
		}
		rest := strings.TrimSpace(text[2:])
		if rest == "" {
			return unpack.SkipForward[any](), nil
		}
		return c.compileCollect(rest, it.pos, true)
	case strings.HasPrefix(text, "*="):
		if err := c.declareMiddle(it.pos); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(text[2:])
		if !isIdent(name) {
			return nil, unpackerr.NewSyntaxError(it.pos, fmt.Sprintf("invalid name %q after '*='", name))
		}
		if err := c.declareName(name, it.pos); err != nil {
			return nil, err
		}
		cell := new(seq.Seq[any])
		c.prog.binds = append(c.prog.binds, func(b Bindings) {
			b[name] = *cell
		})
		return unpack.Rest(cell), nil
	case strings.HasPrefix(text, "*"):
		if err := c.declareMiddle(it.pos); err != nil {
			return nil, err
		}
		rest := strings.TrimSpace(text[1:])
		if rest == "" {
			return unpack.Skip[any](), nil
		}
		return c.compileCollect(rest, it.pos, false)
	}
	return c.compileSlot(it)
}

func (c *compiler) compileCollect(rest string, pos int, forward bool) (unpack.Item[any], error) {
	name := rest
	kind := "list"
	if i := strings.Index(rest, ":"); i >= 0 {
		name = strings.TrimSpace(rest[:i])
		kind = strings.TrimSpace(rest[i+1:])
	}
	if !isIdent(name) {
		return nil, unpackerr.NewSyntaxError(pos, fmt.Sprintf("invalid middle name %q", name))
	}
	if err := c.declareName(name, pos); err != nil {
		return nil, err
	}

	switch kind {
	case "list":
		cell := new([]any)
		c.prog.binds = append(c.prog.binds, func(b Bindings) {
			if *cell == nil {
				b[name] = []any{}
				return
			}
			b[name] = *cell
		})
		if forward {
			return unpack.CollectForward(cell), nil
		}
		return unpack.Collect(cell), nil
	case "set":
		sc := newSetCollector()
		c.prog.resets = append(c.prog.resets, sc.clear)
		c.prog.binds = append(c.prog.binds, func(b Bindings) {
			if sc.order == nil {
				b[name] = []any{}
				return
			}
			b[name] = sc.order
		})
		if forward {
			return unpack.CollectForwardInto[any](sc), nil
		}
		return unpack.CollectInto[any](sc), nil
	default:
		return nil, unpackerr.NewSyntaxError(pos, fmt.Sprintf("unknown container kind %q (want list or set)", kind))
	}
}

func (c *compiler) compileSlot(it item) (unpack.Item[any], error) {
	text := it.text
	switch {
	case text == "true" || text == "false":
		return unpack.Check(unpack.Matches[any](text == "true")), nil
	case text == "_" || (strings.HasPrefix(text, "_") && isIdent(text)):
		return unpack.Discard[any](), nil
	case isIdent(text):
		name := text
		if err := c.declareName(name, it.pos); err != nil {
			return nil, err
		}
		cell := new(any)
		c.prog.binds = append(c.prog.binds, func(b Bindings) {
			b[name] = *cell
		})
		return unpack.Bind(cell), nil
	case strings.HasPrefix(text, "("):
		if !strings.HasSuffix(text, ")") {
			return nil, unpackerr.NewSyntaxError(it.pos, "malformed alternation")
		}
		var alts []any
		for _, alt := range strings.Split(text[1:len(text)-1], "|") {
			v, err := parseLiteral(strings.TrimSpace(alt), it.pos)
			if err != nil {
				return nil, err
			}
			alts = append(alts, v)
		}
		if len(alts) == 0 {
			return nil, unpackerr.NewSyntaxError(it.pos, "empty alternation")
		}
		return unpack.Check(oneOfGuard(alts)), nil
	case strings.HasPrefix(text, "\""):
		v, err := parseLiteral(text, it.pos)
		if err != nil {
			return nil, err
		}
		return unpack.Check(unpack.Matches[any](v)), nil
	case strings.Contains(text, ".."):
		i := strings.Index(text, "..")
		loText := strings.TrimSpace(text[:i])
		hiText := strings.TrimSpace(text[i+2:])
		inclusive := strings.HasPrefix(hiText, "=")
		if inclusive {
			hiText = strings.TrimSpace(hiText[1:])
		}
		lo, err := strconv.Atoi(loText)
		if err != nil {
			return nil, unpackerr.NewSyntaxError(it.pos, fmt.Sprintf("invalid range start %q", loText))
		}
		hi, err := strconv.Atoi(hiText)
		if err != nil {
			return nil, unpackerr.NewSyntaxError(it.pos, fmt.Sprintf("invalid range end %q", hiText))
		}
		return unpack.Check(rangeGuard(lo, hi, inclusive)), nil
	}
	v, err := parseLiteral(text, it.pos)
	if err != nil {
		return nil, err
	}
	return unpack.Check(unpack.Matches[any](v)), nil
}

func (c *compiler) declareMiddle(pos int) error {
	if c.midSeen {
		return unpackerr.NewSyntaxError(pos, "pattern has more than one variable middle")
	}
	c.midSeen = true
	return nil
}

func (c *compiler) declareName(name string, pos int) error {
	if _, ok := c.names[name]; ok {
		return unpackerr.NewSyntaxError(pos, fmt.Sprintf("duplicate binding name %q", name))
	}
	c.names[name] = struct{}{}
	return nil
}

func parseLiteral(text string, pos int) (any, error) {
	if text == "true" {
		return true, nil
	}
	if text == "false" {
		return false, nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}
	if strings.HasPrefix(text, "\"") {
		s, err := strconv.Unquote(text)
		if err != nil {
			return nil, unpackerr.NewSyntaxError(pos, fmt.Sprintf("invalid string literal %s", text))
		}
		return s, nil
	}
	return nil, unpackerr.NewSyntaxError(pos, fmt.Sprintf("unrecognized pattern element %q", text))
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
