// Package builder generates ready-made graphs for demos, tests and the
// "generate" command: cycles, paths, stars, wheels, complete graphs, grids
// and random sparse graphs, laid out on the default canvas.
//
// Generation is composed from Constructors through BuildGraph and tuned by
// functional options:
//
//   - WithIDScheme chooses vertex IDs (DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, SymbolNumberIDFn).
//   - WithWeightFn chooses edge weights (DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn).
//   - WithSeed or WithRand fixes the random source; the same seed, options
//     and constructor order always yield the same graph.
//   - WithHeuristicFn attaches an A* heuristic to every generated node.
//
// Generated IDs and weights always satisfy the edge-list text format, so a
// generated graph round-trips through converters.FormatText and ParseText.
package builder
