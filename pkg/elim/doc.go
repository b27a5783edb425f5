// Package elim orchestrates variable elimination: it converts a factor graph
// into a Bayes net by eliminating variables one at a time, maintaining a live
// adjacency index while mutating the graph in place.
//
// The engine is generic over the conditional representation and works through
// the graph.Factor capability alone; it never inspects numeric content. It
// does not choose an elimination order by itself: callers either permute the
// problem into a good order first (see FillReducingPermutation) or use the
// bounded and marginal variants with an externally supplied permutation.
//
// Elimination is inherently sequential: each step's residual factor feeds the
// next step's adjacency state. The (graph, index) pair threaded through a run
// assumes a single writer; concurrent callers must operate on private copies
// obtained via graph.Graph.Clone. On failure the pair is left in an
// unspecified partially consumed state, so callers requiring atomicity should
// run against a clone and discard it on error.
package elim
