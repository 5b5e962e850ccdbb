// File: counterexample.go
// Role: Heuristic extraction of a non-planar subgraph.

package planar

import (
	"context"
	"errors"
	"fmt"
)

// ExtractCounterexample returns a non-planar subset of edges that is
// minimal with respect to the scan below.
//
// The edges are scanned once in input order. Each edge is removed; if the
// remaining graph became planar, the edge is put back and kept in the
// result, otherwise it stays removed. The result is not guaranteed to be a
// minimum Kuratowski subgraph.
//
// Errors: ErrGraphPlanar if the input is planar, ctx.Err() on cancellation,
// and any input contract violation of TestAndEmbed.
// Complexity: O(E·(V+E)).
func ExtractCounterexample(ctx context.Context, vertices []string, edges []Edge, opts ...Option) ([]Edge, error) {
	ok, err := IsPlanar(vertices, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("ExtractCounterexample: %w", err)
	}
	if ok {
		return nil, ErrGraphPlanar
	}
	logger := resolveOptions(opts).Logger

	keep := make([]bool, len(edges))
	for i := range keep {
		keep[i] = true
	}
	remaining := make([]Edge, 0, len(edges))
	var result []Edge
	for i, e := range edges {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		keep[i] = false
		remaining = remaining[:0]
		for j, f := range edges {
			if keep[j] {
				remaining = append(remaining, f)
			}
		}
		_, err = TestAndEmbed(vertices, remaining)
		switch {
		case err == nil:
			keep[i] = true
			result = append(result, e)
		case !errors.Is(err, ErrNotPlanar):
			return nil, fmt.Errorf("ExtractCounterexample: %w", err)
		}
	}
	logger.Debug("counterexample extracted", "edges", len(edges), "kept", len(result))

	return result, nil
}
