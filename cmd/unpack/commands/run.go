package commands

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"martianoff/unpack"
	"martianoff/unpack/internal/dsl"
	"martianoff/unpack/seq"
)

var runCmd = &cobra.Command{
	Use:   "run <cases.yaml>",
	Short: "Run a YAML file of match cases",
	Long: `Run executes every case in a YAML file and reports pass/fail. A case
names a pattern, an input sequence, and either the bindings expected on
success or the depth expected on mismatch:

  cases:
    - name: collect middle
      pattern: "a, b, *c, d, e"
      input: [0, 1, 2, 3, 4, 5, 6, 7]
      want:
        a: 0
        c: [2, 3, 4, 5]
    - name: too few
      pattern: "a, b, c, d, e"
      input: [0, 1, 2]
      depth: 3

Only the names listed under want are compared. Set forward: true to consume
the input as a forward-only source.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

type caseFile struct {
	Cases []matchCase `yaml:"cases"`
}

type matchCase struct {
	Name    string         `yaml:"name"`
	Pattern string         `yaml:"pattern"`
	Input   []any          `yaml:"input"`
	Forward bool           `yaml:"forward"`
	Want    map[string]any `yaml:"want"`
	Depth   *int           `yaml:"depth"`
}

func runRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read case file: %w", err)
	}
	var file caseFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse case file: %w", err)
	}

	failures := 0
	for i, mc := range file.Cases {
		name := mc.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if reason := runCase(mc); reason != "" {
			failures++
			fmt.Printf("FAIL %s: %s\n", name, reason)
			continue
		}
		fmt.Printf("ok   %s\n", name)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d case(s) failed", failures, len(file.Cases))
	}
	fmt.Printf("%d case(s) passed\n", len(file.Cases))
	return nil
}

// runCase executes one case and returns a failure reason, or "" on success.
func runCase(mc matchCase) string {
	prog, err := dsl.Compile(mc.Pattern)
	if err != nil {
		return fmt.Sprintf("compile: %v", err)
	}

	var src seq.Seq[any] = seq.FromSlice(mc.Input)
	if mc.Forward {
		src = seq.ForwardOnly(src)
	}

	bindings, err := prog.Match(src)
	if err != nil {
		depth, ok := unpack.Depth(err)
		if !ok {
			return err.Error()
		}
		if mc.Depth == nil {
			return fmt.Sprintf("unexpected mismatch at depth %d", depth)
		}
		if depth != *mc.Depth {
			return fmt.Sprintf("mismatch depth = %d, want %d", depth, *mc.Depth)
		}
		return ""
	}
	if mc.Depth != nil {
		return fmt.Sprintf("matched, want mismatch at depth %d", *mc.Depth)
	}

	for name, want := range mc.Want {
		got, ok := bindings[name]
		if !ok {
			return fmt.Sprintf("no binding for %q", name)
		}
		if s, isSeq := got.(seq.Seq[any]); isSeq {
			drained := seq.Drain(s)
			if drained == nil {
				drained = []any{}
			}
			got = drained
		}
		if !reflect.DeepEqual(got, want) {
			return fmt.Sprintf("%s = %v, want %v", name, got, want)
		}
	}
	return ""
}
