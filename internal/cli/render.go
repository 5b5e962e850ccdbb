package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/render"
)

var errBinaryToTerminal = errors.New("png output needs --output")

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		typ       string
		layout    string
		faces     bool
		highlight bool
	)
	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Draw a graph as DOT, SVG or PNG",
		Long: `render draws the graph with Graphviz. Planar graphs are drawn from their
embedding; for non-planar graphs the counterexample edges are highlighted.

The output type is taken from --type, then from the extension of --output,
then from the configuration (render.format).`,
		Example: `  planarity render cube.yaml -o cube.svg
  planarity render k33.txt --type dot`,
		Args: c.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if typ == "" {
				typ = renderType(output)
			}
			if typ == "" {
				typ = c.cfg.Render.Format
			}
			if layout == "" {
				layout = c.cfg.Render.Layout
			}
			if typ == "png" && output == "" {
				return errBinaryToTerminal
			}

			in, err := c.loadInput(cmd, args)
			if err != nil {
				return err
			}
			rec, _, err := c.resolve(cmd, in, highlight)
			if err != nil {
				return err
			}

			opts := render.Options{Title: strings.TrimSuffix(filepath.Base(in.name), filepath.Ext(in.name)), Faces: faces}
			var dot string
			if rec.Planar {
				emb, err := embedding(rec)
				if err != nil {
					return err
				}
				if dot, err = render.ToDOT(emb, opts); err != nil {
					return err
				}
			} else {
				opts.Highlight = rec.Counterexample
				dot = render.GraphToDOT(in.graph, opts)
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			data, err := render.Render(cmd.Context(), dot, typ, layout)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = writeOutput(output, data); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s with %s", typ, layout))
			printer{w: cmd.OutOrStdout()}.file(output)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "output type: "+strings.Join(render.Formats(), ", "))
	cmd.Flags().StringVar(&layout, "layout", "", "Graphviz layout: "+strings.Join(render.Layouts(), ", "))
	cmd.Flags().BoolVar(&faces, "faces", false, "annotate the drawing with its faces")
	cmd.Flags().BoolVar(&highlight, "highlight", true, "highlight a counterexample in non-planar graphs")

	return cmd
}
