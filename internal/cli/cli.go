// Package cli implements the planarity command-line interface.
//
// # Commands
//
//   - check: report whether a graph is planar
//   - embed: print the planar rotation system as YAML
//   - faces: list the faces of the embedding
//   - counterexample: print a non-planar edge subset
//   - render: draw the graph as DOT, SVG or PNG
//   - gen: write a generated graph family to a file
//   - cache: inspect or clear the result cache
//
// Graphs come from a FILE argument ("-" reads stdin) or from --expr.
// Results are cached in a Badger database keyed by a digest of the input.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/config"
)

const appName = "planarity"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        config.Config
	configPath string
	format     string
	expr       string
	verbose    bool
	noCache    bool
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: config.Default()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Planarity testing and planar embeddings",
		Long: `planarity decides whether a graph can be drawn in the plane without
crossings. For planar graphs it produces a combinatorial embedding (the
clockwise order of neighbours around every vertex); for non-planar graphs it
can extract an edge subset that is still non-planar.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("planarity %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&c.configPath, "config", config.DefaultPath, "configuration file")
	pf.StringVarP(&c.format, "format", "f", "", "graph file format (edges, adjacency_list, adjacency_matrix, yaml); empty detects from the extension")
	pf.StringVarP(&c.expr, "expr", "e", "", `inline graph instead of FILE, e.g. "a-b-c-a, c-d"`)
	pf.BoolVar(&c.noCache, "no-cache", false, "do not read or write the result cache")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.embedCommand())
	root.AddCommand(c.facesCommand())
	root.AddCommand(c.counterexampleCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// setup loads the configuration, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Input.Format = c.format
	}
	if c.noCache {
		cfg.Cache.Enabled = false
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	return nil
}
