package graphio

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed vertex count line.
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadLine indicates a line that does not fit the declared format.
	ErrBadLine = errors.New("graphio: bad line")

	// ErrVertexRange indicates a vertex number outside 1..n.
	ErrVertexRange = errors.New("graphio: vertex out of range")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrBadDocument indicates a YAML document that cannot describe a graph
	// or an embedding.
	ErrBadDocument = errors.New("graphio: bad document")

	// ErrBadExpr indicates an inline graph expression that does not parse.
	ErrBadExpr = errors.New("graphio: bad expression")
)
