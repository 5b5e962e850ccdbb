package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/planarity/graphio"
	"github.com/katalvlaran/planarity/planar"
	"github.com/katalvlaran/planarity/store"
)

// checkResult is the outcome for one checked input.
type checkResult struct {
	in    *input
	rec   store.Record
	hit   bool
	faces int
}

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Report whether graphs are planar",
		Long: `check tests every FILE and prints one verdict per file, in argument order.
Files are tested in parallel.`,
		Example: `  planarity check k5.txt cube.yaml
  planarity check --expr "a-b-c-d-a, a-c"`,
		Args: c.inputsArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := args
			if c.expr != "" {
				sources = []string{""}
			}
			logger := loggerFromContext(cmd.Context())
			r, release := c.resolver(logger)
			defer release()

			prog := newProgress(logger)
			results := make([]checkResult, len(sources))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, source := range sources {
				g.Go(func() error {
					in, err := c.load(cmd, source)
					if err != nil {
						return err
					}
					rec, hit, err := r.Resolve(ctx, in.vertices, in.edges, false)
					if err != nil {
						return fmt.Errorf("%s: %w", in.name, err)
					}
					res := checkResult{in: in, rec: rec, hit: hit, faces: -1}
					if rec.Planar {
						emb, err := embedding(rec)
						if err != nil {
							return err
						}
						faces, err := emb.Faces()
						if err != nil {
							return err
						}
						res.faces = len(faces)
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Checked inputs: %d", len(results)))

			p := printer{w: cmd.OutOrStdout()}
			for _, res := range results {
				if res.rec.Planar {
					p.success("%s is planar", res.in.name)
				} else {
					p.failure("%s is not planar", res.in.name)
				}
				p.stats(len(res.in.vertices), len(res.in.edges), res.faces, res.hit)
			}

			return nil
		},
	}
}

func (c *CLI) embedCommand() *cobra.Command {
	var (
		withFaces bool
		witness   bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "embed [FILE]",
		Short: "Print the planar rotation system as YAML",
		Long: `embed prints a YAML document with the verdict and, for planar graphs, the
clockwise neighbour order of every vertex. The document can be loaded back
and is validated on load.`,
		Args: c.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.loadInput(cmd, args)
			if err != nil {
				return err
			}
			rec, _, err := c.resolve(cmd, in, witness)
			if err != nil {
				return err
			}

			doc := graphio.EmbeddingDoc{Planar: false, Counterexample: rec.Counterexample}
			if rec.Planar {
				emb, err := embedding(rec)
				if err != nil {
					return err
				}
				if doc, err = graphio.NewEmbeddingDoc(emb, withFaces); err != nil {
					return err
				}
			}

			if output == "" {
				return graphio.WriteEmbeddingDoc(cmd.OutOrStdout(), doc)
			}
			var buf strings.Builder
			if err = graphio.WriteEmbeddingDoc(&buf, doc); err != nil {
				return err
			}
			if err = writeOutput(output, []byte(buf.String())); err != nil {
				return err
			}
			printer{w: cmd.OutOrStdout()}.file(output)

			return nil
		},
	}
	cmd.Flags().BoolVar(&withFaces, "faces", false, "include the face list")
	cmd.Flags().BoolVar(&witness, "witness", false, "include a counterexample for non-planar graphs")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file")

	return cmd
}

func (c *CLI) facesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "faces [FILE]",
		Short: "List the faces of a planar embedding",
		Long:  `faces prints one face per line as the vertices met while walking its boundary.`,
		Args:  c.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.loadInput(cmd, args)
			if err != nil {
				return err
			}
			rec, _, err := c.resolve(cmd, in, false)
			if err != nil {
				return err
			}
			emb, err := embedding(rec)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			faces, err := emb.Faces()
			if err != nil {
				return err
			}
			for _, f := range faces {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(f, " "))
			}
			stats, err := emb.ComponentStats()
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("faces listed", "faces", len(faces), "components", len(stats))

			return nil
		},
	}
}

func (c *CLI) counterexampleCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "counterexample [FILE]",
		Aliases: []string{"witness"},
		Short:   "Print a non-planar subset of the edges",
		Long: `counterexample removes edges one at a time, keeping only those whose removal
would make the graph planar. The remaining edges form a non-planar subgraph;
it is usually, but not always, a Kuratowski subdivision.`,
		Args: c.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.loadInput(cmd, args)
			if err != nil {
				return err
			}
			rec, _, err := c.resolve(cmd, in, true)
			if err != nil {
				return err
			}

			p := printer{w: cmd.OutOrStdout()}
			if rec.Planar {
				p.success("%s is planar, there is no counterexample", in.name)
				return nil
			}
			if output != "" {
				if err = writeCounterexample(output, rec.Counterexample); err != nil {
					return err
				}
				p.failure("%s is not planar: %d of %d edges kept", in.name, len(rec.Counterexample), len(in.edges))
				p.file(output)
				return nil
			}
			for _, e := range rec.Counterexample {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.U, e.V)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the subgraph as a graph file (format from the extension)")

	return cmd
}

// writeCounterexample stores edges as a graph file.
func writeCounterexample(path string, edges []planar.Edge) error {
	g, err := edgeGraph(edges)
	if err != nil {
		return err
	}

	return graphio.WriteFile(path, g, "")
}
