package symbolic

import (
	"slices"

	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/graph"
)

// EliminateOne symbolically eliminates a single variable, updating the graph
// and index in place. It computes the variable union of the touching factors
// directly instead of going through the factor capability, but is observably
// identical to elim.EliminateOne over symbolic factors.
func EliminateOne(g *graph.Graph[*Conditional], idx *graph.VariableIndex, v graph.Var) (*Conditional, error) {
	handles := idx.FactorsTouching(v)
	if len(handles) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidStateVariable,
			"variable %d has no live factors in the index", v)
	}

	consumed := append([]graph.Handle(nil), handles...)
	union := make(map[graph.Var]struct{})
	factors := make([]graph.Factor[*Conditional], len(consumed))
	for i, h := range consumed {
		f, err := g.Factor(h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidStateHandle, err,
				"adjacency entry for variable %d", v)
		}
		factors[i] = f
		for _, u := range f.Vars() {
			if u != v {
				union[u] = struct{}{}
			}
		}
	}

	for i, h := range consumed {
		for _, u := range factors[i].Vars() {
			if err := idx.Erase(u, h); err != nil {
				return nil, err
			}
		}
		if err := g.Remove(h); err != nil {
			return nil, err
		}
	}

	parents := make([]graph.Var, 0, len(union))
	for u := range union {
		parents = append(parents, u)
	}
	slices.Sort(parents)

	if len(parents) > 0 {
		residual := NewFactor(parents...)
		h := g.Add(residual)
		for _, u := range parents {
			idx.Insert(u, h)
		}
	}

	return &Conditional{frontal: v, parents: parents}, nil
}

// Eliminate symbolically eliminates all variables of g in natural order.
func Eliminate(g *graph.Graph[*Conditional]) (*graph.BayesNet[*Conditional], error) {
	return EliminateUntil(g, g.NumVars())
}

// EliminateUntil symbolically eliminates variables 0..bound−1 only.
func EliminateUntil(g *graph.Graph[*Conditional], bound int) (*graph.BayesNet[*Conditional], error) {
	idx := graph.NewVariableIndex(g)
	bn := &graph.BayesNet[*Conditional]{}
	for v := 0; v < bound; v++ {
		cond, err := EliminateOne(g, idx, graph.Var(v))
		if err != nil {
			return nil, err
		}
		bn.Append(cond)
	}
	return bn, nil
}
