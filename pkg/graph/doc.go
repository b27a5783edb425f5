// Package graph defines the structural data model of the elimination core:
// integer variable indices, an arena-backed factor graph with stable handles,
// the variable-to-factor adjacency index, and the Bayes net that elimination
// produces.
//
// The package is generic over the conditional representation. Factors are
// opaque capabilities: the engine only ever asks a factor which variables it
// touches and to eliminate a designated variable. Numeric factor types
// (Gaussian, nonlinear, physical models) live in consuming packages and are
// never inspected here.
//
// # Ownership
//
// Factor values are shared by reference between a Graph, its clones, and any
// VariableIndex built over it. Elimination never mutates a factor's payload,
// only graph-level references: removal tombstones the factor's arena slot so
// other live handles stay valid mid-elimination.
package graph
