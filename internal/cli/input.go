package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/graphio"
	"github.com/katalvlaran/planarity/planar"
	"github.com/katalvlaran/planarity/store"
)

var errInputConflict = errors.New("give either FILE or --expr, not both")

// input is a loaded graph together with the sequences handed to the tester.
type input struct {
	name     string
	graph    *core.Graph
	vertices []string
	edges    []planar.Edge
}

// inputArgs accepts exactly one FILE, or none when --expr is set.
func (c *CLI) inputArgs(cmd *cobra.Command, args []string) error {
	if c.expr == "" {
		return cobra.ExactArgs(1)(cmd, args)
	}
	if len(args) > 0 {
		return errInputConflict
	}

	return nil
}

// inputsArgs accepts one or more FILEs, or none when --expr is set.
func (c *CLI) inputsArgs(cmd *cobra.Command, args []string) error {
	if c.expr == "" {
		return cobra.MinimumNArgs(1)(cmd, args)
	}
	if len(args) > 0 {
		return errInputConflict
	}

	return nil
}

// loadInput reads the graph named by args or --expr.
func (c *CLI) loadInput(cmd *cobra.Command, args []string) (*input, error) {
	if len(args) == 0 {
		return c.load(cmd, "")
	}

	return c.load(cmd, args[0])
}

// load reads one graph: "" selects --expr, "-" reads stdin, anything else
// is a file path.
func (c *CLI) load(cmd *cobra.Command, source string) (*input, error) {
	var (
		g    *core.Graph
		name string
		err  error
	)
	switch source {
	case "":
		name = "expr"
		g, err = graphio.ParseExpr(c.expr)
	case "-":
		name = "stdin"
		var f graphio.Format
		if f, err = graphio.ParseFormat(c.cfg.Input.Format); err == nil {
			g, err = graphio.Read(cmd.InOrStdin(), f)
		}
	default:
		name = source
		g, err = graphio.ReadFile(source, graphio.Format(c.cfg.Input.Format))
	}
	if err != nil {
		return nil, err
	}

	in := &input{name: name, graph: g}
	in.vertices, in.edges = planar.Input(g)
	loggerFromContext(cmd.Context()).Debug("graph loaded", "source", name,
		"vertices", len(in.vertices), "edges", len(in.edges), "directed", g.Directed())

	return in, nil
}

// resolver opens the configured cache and returns a Resolver over it plus
// a function releasing the cache. An unusable cache degrades to no caching.
func (c *CLI) resolver(logger *log.Logger) (*store.Resolver, func()) {
	if !c.cfg.Cache.Enabled {
		return store.NewResolver(store.NullStore{}, logger), func() {}
	}
	s, err := store.OpenBadger(store.Config{Dir: c.cfg.Cache.Dir, Logger: logger})
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "dir", c.cfg.Cache.Dir, "err", err)
		return store.NewResolver(store.NullStore{}, logger), func() {}
	}

	return store.NewResolver(s, logger), func() {
		if err := s.Close(); err != nil {
			logger.Warn("closing cache", "err", err)
		}
	}
}

// resolve runs the cached planarity test on in.
func (c *CLI) resolve(cmd *cobra.Command, in *input, witness bool) (store.Record, bool, error) {
	logger := loggerFromContext(cmd.Context())
	r, release := c.resolver(logger)
	defer release()

	prog := newProgress(logger)
	rec, hit, err := r.Resolve(cmd.Context(), in.vertices, in.edges, witness)
	if err != nil {
		return store.Record{}, false, err
	}
	prog.done(fmt.Sprintf("Tested %s: %d vertices, %d edges", in.name, len(in.vertices), len(in.edges)))

	return rec, hit, nil
}

// embedding rebuilds the embedding of a planar record.
func embedding(rec store.Record) (*planar.Embedding, error) {
	if !rec.Planar {
		return nil, planar.ErrNotPlanar
	}
	emb, err := planar.EmbeddingFromData(rec.Rotation)
	if err != nil {
		return nil, fmt.Errorf("cached embedding: %w", err)
	}
	if err = emb.CheckStructure(); err != nil {
		return nil, fmt.Errorf("cached embedding: %w", err)
	}

	return emb, nil
}
