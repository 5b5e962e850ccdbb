package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/planarity/core"
)

// Read decodes a graph in format f.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	if f == FormatYAML {
		return ReadYAML(r)
	}
	t, err := ParseTable(r, f)
	if err != nil {
		return nil, err
	}

	return t.Graph()
}

// Write encodes g in format f. Text formats renumber vertices 1..n in
// insertion order; only YAML keeps the original IDs.
func Write(w io.Writer, g *core.Graph, f Format) error {
	if f == FormatYAML {
		return WriteYAML(w, g)
	}
	t, _ := TableFromGraph(g)

	return t.Encode(w, f)
}

// ReadFile opens path and decodes it; an empty format is detected from the
// file extension.
func ReadFile(path string, f Format) (*core.Graph, error) {
	if f == "" {
		f = DetectFormat(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer file.Close()

	g, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return g, nil
}

// WriteFile creates path and encodes g into it.
func WriteFile(path string, g *core.Graph, f Format) (err error) {
	if f == "" {
		f = DetectFormat(path)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(file, g, f)
}
