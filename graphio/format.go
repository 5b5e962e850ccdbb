package graphio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a graph serialization.
type Format string

const (
	FormatEdges           Format = "edges"
	FormatAdjacencyList   Format = "adjacency_list"
	FormatAdjacencyMatrix Format = "adjacency_matrix"
	FormatYAML            Format = "yaml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatEdges, FormatAdjacencyList, FormatAdjacencyMatrix, FormatYAML}
}

// ParseFormat resolves a format name; "" selects FormatEdges.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatEdges, nil
	}
	for _, f := range Formats() {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}

	return "", fmt.Errorf("ParseFormat: %q: %w", name, ErrUnknownFormat)
}

// DetectFormat guesses a format from a file extension: .yaml/.yml, .adj and
// .mat are recognised, everything else is read as an edge list.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".adj":
		return FormatAdjacencyList
	case ".mat":
		return FormatAdjacencyMatrix
	default:
		return FormatEdges
	}
}
