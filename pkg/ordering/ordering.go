// Package ordering computes fill-reducing elimination orders.
//
// The elimination engine consumes orderings through the Oracle interface:
// any heuristic that reads an adjacency pattern and returns a total bijective
// ordering may substitute. MinDegree is the built-in COLAMD-equivalent
// default.
package ordering

import (
	"github.com/factorbay/factorbay/pkg/graph"
	"github.com/factorbay/factorbay/pkg/perm"
)

// Pattern is the adjacency sparsity an oracle reads: which factors touch
// each variable. *graph.VariableIndex satisfies it.
type Pattern interface {
	// Size returns the number of variables.
	Size() int
	// FactorsTouching returns the handles of the factors touching v.
	FactorsTouching(v graph.Var) []graph.Handle
}

// Oracle computes a fill-reducing elimination order from an adjacency
// pattern. The returned permutation maps elimination position to original
// variable index and must be total: a bijection over [0, p.Size()), even on
// disconnected or degenerate patterns. Variables in constrainLast must occupy
// the tail of the ordering, in any internal order.
type Oracle interface {
	ComputeOrdering(p Pattern, constrainLast []graph.Var) (perm.Permutation, error)
}
