package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"martianoff/unpack/internal/dsl"
	"martianoff/unpack/seq"
)

var matchForward bool

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [values...]",
	Short: "Match values against a destructuring pattern",
	Long: `Match compiles a pattern and destructures the given values against it.
Values that parse as integers are matched as integers, everything else as
strings.

Examples:
  unpack match "a, b, *c, d, e" 0 1 2 3 4 5 6 7
  unpack match "_, 2..=10, (0|1|2)" 7 5 1
  unpack match --forward "x, **rest, y" a b c d`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVarP(&matchForward, "forward", "f", false, "Consume the values as a forward-only source")
}

func runMatch(cmd *cobra.Command, args []string) error {
	prog, err := dsl.Compile(args[0])
	if err != nil {
		return err
	}

	vals := parseValues(args[1:])
	var src seq.Seq[any] = seq.FromSlice(vals)
	if matchForward {
		src = seq.ForwardOnly(src)
	}

	bindings, err := prog.Match(src)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		fmt.Println("match")
		return nil
	}
	for _, name := range names {
		fmt.Printf("%s = %v\n", name, renderBinding(bindings[name]))
	}
	return nil
}

// parseValues converts argv strings to match elements: integers where they
// parse, strings otherwise.
func parseValues(args []string) []any {
	vals := make([]any, len(args))
	for i, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			vals[i] = n
			continue
		}
		vals[i] = a
	}
	return vals
}

// renderBinding makes a binding printable; a resumable middle is drained so
// its remaining elements can be shown.
func renderBinding(v any) any {
	if s, ok := v.(seq.Seq[any]); ok {
		return seq.Drain(s)
	}
	return v
}
