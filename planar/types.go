// File: types.go
// Role: Sentinel errors, the input Edge type and run options.

package planar

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrNotPlanar is the single "no" answer of TestAndEmbed.
	ErrNotPlanar = errors.New("planar: graph is not planar")

	// ErrGraphPlanar is returned by ExtractCounterexample when there is
	// nothing to extract.
	ErrGraphPlanar = errors.New("planar: graph is planar, no counterexample exists")

	// ErrEmptyVertexID indicates a vertex identifier equal to "".
	ErrEmptyVertexID = errors.New("planar: vertex ID is empty")

	// ErrDuplicateVertex indicates the same vertex listed twice in the input.
	ErrDuplicateVertex = errors.New("planar: duplicate vertex")

	// ErrVertexNotFound indicates a reference to a vertex that is not present.
	ErrVertexNotFound = errors.New("planar: vertex not found")

	// ErrSelfLoop indicates an edge or half-edge u→u.
	ErrSelfLoop = errors.New("planar: self-loop")

	// ErrDuplicateEdge indicates the same undirected edge listed twice
	// (in either direction).
	ErrDuplicateEdge = errors.New("planar: duplicate edge")

	// ErrEdgeNotFound indicates a removal of a half-edge pair that does not exist.
	ErrEdgeNotFound = errors.New("planar: edge not in embedding")

	// ErrAmbiguousReference indicates that both a clockwise and a
	// counter-clockwise reference were given to AddHalfEdge.
	ErrAmbiguousReference = errors.New("planar: only one of cw/ccw reference may be given")

	// ErrInvalidReference indicates a reference neighbor that is not
	// currently adjacent to the start vertex (or any reference for a vertex
	// without half-edges).
	ErrInvalidReference = errors.New("planar: invalid reference neighbor")

	// ErrReferenceRequired indicates that the start vertex already has
	// half-edges and no reference was given.
	ErrReferenceRequired = errors.New("planar: cw or ccw reference required")

	// ErrHalfEdgeExists indicates an attempt to insert u→v twice.
	ErrHalfEdgeExists = errors.New("planar: half-edge already exists")

	// ErrBadEmbedding indicates a structurally broken rotation system:
	// impossible face, missing reciprocal half-edge, or Euler violation.
	ErrBadEmbedding = errors.New("planar: bad embedding")
)

// Edge is one undirected input edge. The pair is unordered: {U,V} and {V,U}
// denote the same edge.
type Edge struct {
	U string `yaml:"u"`
	V string `yaml:"v"`
}

// Option configures TestAndEmbed and the helpers layered on top of it.
type Option func(*Options)

// Options holds the configurable parameters of a planarity run.
type Options struct {
	// Logger receives phase-level debug entries. Never nil after DefaultOptions.
	Logger *log.Logger
}

// DefaultOptions returns Options with a silent logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger routes phase diagnostics to l. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
