// Package builder generates deterministic graph families on top of core.Graph.
//
// The families serve two audiences: tests and benchmarks of the planar package,
// which need graphs with a known verdict (K5, K3,3, Platonic solids, stacked
// triangulations, grids, trees), and the command line generator, which writes
// those graphs to disk.
//
// Every family is a Constructor: a closure validating its parameters and then
// mutating a *core.Graph. Constructors are composed by BuildGraph:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.StackedTriangulation(50))
//
// Configuration primitives:
//
//   - BuilderOption mutates the private builderConfig (RNG, ID scheme, weight
//     function, bipartite prefixes).
//   - IDFn schemes: DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), AlphanumericIDFn (base 36), HexIDFn,
//     SymbolNumberIDFn(prefix).
//   - WeightFn distributions: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//     Weights are drawn only when the target graph is weighted.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed and option set.
//   - Directed graphs receive both directions of every edge.
//   - Invalid parameters surface as wrapped sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrOptionViolation); option
//     constructors panic on nil arguments.
package builder
