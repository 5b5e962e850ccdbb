// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_platonic.go: Platonic solid shells, optionally with a centre vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid builds the shell graph of name on idFn(0..V-1). With
// withCenter it also joins CenterVertexID to every shell vertex; the centred
// tetrahedron is K5 and the centred octahedron, cube, dodecahedron and
// icosahedron are all non-planar as well, which makes them handy negatives.
//
// Errors: ErrOptionViolation for an unknown solid.
// Complexity: O(V+E).
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}

		ids, err := addVertices(g, cfg, methodPlatonicSolid, n)
		if err != nil {
			return err
		}
		for _, p := range platonicEdgeSets[name] {
			if err = connect(g, cfg, methodPlatonicSolid, ids[p.U], ids[p.V]); err != nil {
				return err
			}
		}

		if !withCenter {
			return nil
		}
		if err = g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodPlatonicSolid, CenterVertexID, err)
		}
		for _, id := range ids {
			if err = connect(g, cfg, methodPlatonicSolid, CenterVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
