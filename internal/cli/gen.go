package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/builder"
	"github.com/katalvlaran/planarity/graphio"
)

var errUnknownFamily = errors.New("unknown graph family")

// family describes one generator reachable from "planarity gen".
type family struct {
	args  string
	nargs int
	build func(args []string, center bool) (builder.Constructor, error)
}

var families = map[string]family{
	"complete":  {args: "N", nargs: 1, build: sized(builder.Complete)},
	"cycle":     {args: "N", nargs: 1, build: sized(builder.Cycle)},
	"path":      {args: "N", nargs: 1, build: sized(builder.Path)},
	"star":      {args: "N", nargs: 1, build: sized(builder.Star)},
	"wheel":     {args: "N", nargs: 1, build: sized(builder.Wheel)},
	"stacked":   {args: "N", nargs: 1, build: sized(builder.StackedTriangulation)},
	"tree":      {args: "N", nargs: 1, build: sized(builder.RandomTree)},
	"bipartite": {args: "N1 N2", nargs: 2, build: sized2(builder.CompleteBipartite)},
	"grid":      {args: "ROWS COLS", nargs: 2, build: sized2(builder.Grid)},
	"platonic": {args: "NAME", nargs: 1, build: func(args []string, center bool) (builder.Constructor, error) {
		name, err := builder.ParsePlatonicName(args[0])
		if err != nil {
			return nil, err
		}
		return builder.PlatonicSolid(name, center), nil
	}},
	"random": {args: "N P", nargs: 2, build: func(args []string, _ bool) (builder.Constructor, error) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("N: %w", err)
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("P: %w", err)
		}
		return builder.RandomSparse(n, p), nil
	}},
}

func sized(fn func(int) builder.Constructor) func([]string, bool) (builder.Constructor, error) {
	return func(args []string, _ bool) (builder.Constructor, error) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("N: %w", err)
		}
		return fn(n), nil
	}
}

func sized2(fn func(int, int) builder.Constructor) func([]string, bool) (builder.Constructor, error) {
	return func(args []string, _ bool) (builder.Constructor, error) {
		a, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		b, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

func familyUsage() string {
	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(families)) {
		fmt.Fprintf(&b, "  %-10s %s\n", name, families[name].args)
	}

	return b.String()
}

func (c *CLI) genCommand() *cobra.Command {
	var (
		output string
		seed   int64
		center bool
	)
	cmd := &cobra.Command{
		Use:   "gen FAMILY [ARGS...]",
		Short: "Generate a graph from a named family",
		Long: `gen writes a generated graph. Families and their arguments:

` + familyUsage() + `
Text formats number vertices 1..n; use a .yaml output to keep the generated
vertex names. Random families are reproducible for a fixed --seed.`,
		Example: `  planarity gen platonic icosahedron -o ico.yaml
  planarity gen stacked 200 --seed 7 -o tri.txt`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: slices.Sorted(maps.Keys(families)),
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, ok := families[args[0]]
			if !ok {
				return fmt.Errorf("%q: %w", args[0], errUnknownFamily)
			}
			if len(args)-1 != fam.nargs {
				return fmt.Errorf("%s expects %s", args[0], fam.args)
			}
			cons, err := fam.build(args[1:], center)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, cons)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("graph generated", "family", args[0],
				"vertices", g.VertexCount(), "edges", g.EdgeCount())

			f := graphio.Format(c.cfg.Input.Format)
			if output == "" {
				if f == "" {
					f = graphio.FormatEdges
				}
				return graphio.Write(cmd.OutOrStdout(), g, f)
			}
			if err = graphio.WriteFile(output, g, f); err != nil {
				return err
			}
			printer{w: cmd.OutOrStdout()}.file(output)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout, format from the extension)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&center, "center", false, "platonic: add a vertex joined to every corner")

	return cmd
}
