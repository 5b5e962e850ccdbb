// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_grid.go: the rectangular lattice P_rows × P_cols.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// gridVertexID formats a cell as "r,c". Grid IDs ignore the ID scheme.
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid builds a rows×cols lattice; each cell joins its right and lower
// neighbor. Vertices are inserted row-major. The planar embedding has
// (rows-1)(cols-1)+1 faces.
//
// Errors: ErrTooFewVertices if rows or cols < 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
