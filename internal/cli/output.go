package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/planar"
)

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// edgeGraph builds an undirected graph from an edge list.
func edgeGraph(edges []planar.Edge) (*core.Graph, error) {
	g := core.NewGraph()
	for _, e := range edges {
		if _, err := g.AddEdge(e.U, e.V, 0); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// renderType maps an output file extension to a render format; "" when unknown.
func renderType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	case ".png":
		return "png"
	case ".dot", ".gv":
		return "dot"
	}

	return ""
}
