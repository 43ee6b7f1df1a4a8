// Package builder generates the weighted lattice graphs that the MST
// engines animate, and builds explicit fixtures for tests and scenarios.
//
// The package offers the following key components:
//
//   - Generate(size, shape, opts...): a size×size lattice masked to one of
//     the core.Shape outlines, with randomly placed right/bottom edges,
//     a connectivity back-fill, boundary flags, and a permuted edge order.
//   - FromEdges(nodes, edges): validated graph from explicit data.
//   - Path(weights...): a single-row path fixture.
//   - Configuration primitives:
//     – BuilderOption:        a function that mutates builderConfig before use.
//     – WithSeed / WithRand:  RNG selection (reproducible graphs).
//     – WithConnectionChance: edge placement probability (default 0.85).
//     – WithShuffle:          toggle the final permutation.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     uniform [1,101).
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform [min,max).
//     – IntegerWeightFn:     integers in [min,max], ties likely.
//     – ExponentialWeightFn: 1 + Exp(rate).
//
// Guarantees:
//
//   - Node ids are dense and row-major over the kept cells.
//   - Every edge joins lattice neighbours, has weight > 0, and no pair
//     appears twice.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrEmptyShape, ErrUnknownShape,
//     ErrInvalidGraph) wrapped with the entry-point name.
//
// Connectivity is a goal, not a guarantee; the MST engines return a
// spanning forest when it is not reached.
package builder
