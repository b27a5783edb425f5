package ordering

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/graph"
	"github.com/factorbay/factorbay/pkg/perm"
)

// MinDegree is the default ordering oracle: a minimum-degree heuristic over
// the variable adjacency induced by shared factors. At each step it
// eliminates the unconstrained variable with the fewest remaining neighbors,
// breaking ties toward the lowest index, and simulates the fill-in that
// elimination causes by uniting the eliminated variable's neighborhood.
// Constrained variables are ordered after all unconstrained ones using the
// same rule, which keeps marginal targets at the cheap end of the ordering.
//
// The heuristic is deterministic: identical patterns produce identical
// orderings.
type MinDegree struct{}

// ComputeOrdering implements Oracle.
func (MinDegree) ComputeOrdering(p Pattern, constrainLast []graph.Var) (perm.Permutation, error) {
	n := p.Size()

	constrained := bitset.New(uint(n))
	for _, v := range constrainLast {
		if int(v) < 0 || int(v) >= n {
			return perm.Permutation{}, errors.New(errors.ErrCodePreconditionRange,
				"constrained variable %d out of range [0, %d)", v, n)
		}
		constrained.Set(uint(v))
	}

	neighbors := adjacency(p)

	order := make([]graph.Var, 0, n)
	eliminated := bitset.New(uint(n))

	// Unconstrained first, then the constrained tail.
	for _, wantConstrained := range []bool{false, true} {
		for {
			next, ok := pickMinDegree(neighbors, eliminated, constrained, wantConstrained)
			if !ok {
				break
			}
			order = append(order, next)
			eliminateVar(neighbors, eliminated, next)
		}
	}

	out, err := perm.FromSlice(order)
	if err != nil {
		return perm.Permutation{}, errors.Wrap(errors.ErrCodeOracleIncomplete, err,
			"min-degree ordering over %d variables is not a bijection", n)
	}
	return out, nil
}

// adjacency builds per-variable neighbor masks: u and v are neighbors when
// some factor touches both.
func adjacency(p Pattern) []*bitset.BitSet {
	n := p.Size()

	// Invert variable->factors into factor->variables.
	factorVars := make(map[graph.Handle][]graph.Var)
	for v := 0; v < n; v++ {
		for _, h := range p.FactorsTouching(graph.Var(v)) {
			factorVars[h] = append(factorVars[h], graph.Var(v))
		}
	}

	neighbors := make([]*bitset.BitSet, n)
	for v := range neighbors {
		neighbors[v] = bitset.New(uint(n))
	}
	for _, vars := range factorVars {
		for _, u := range vars {
			for _, v := range vars {
				if u != v {
					neighbors[u].Set(uint(v))
				}
			}
		}
	}
	return neighbors
}

// pickMinDegree returns the unvisited variable with the smallest neighbor
// count within the requested constraint class, lowest index on ties.
func pickMinDegree(neighbors []*bitset.BitSet, eliminated, constrained *bitset.BitSet, wantConstrained bool) (graph.Var, bool) {
	best := -1
	bestDeg := uint(0)
	for v := range neighbors {
		if eliminated.Test(uint(v)) || constrained.Test(uint(v)) != wantConstrained {
			continue
		}
		deg := neighbors[v].Count()
		if best < 0 || deg < bestDeg {
			best = v
			bestDeg = deg
		}
	}
	if best < 0 {
		return 0, false
	}
	return graph.Var(best), true
}

// eliminateVar marks v eliminated and connects its remaining neighbors into
// a clique, mirroring the fill-in real elimination would introduce.
func eliminateVar(neighbors []*bitset.BitSet, eliminated *bitset.BitSet, v graph.Var) {
	eliminated.Set(uint(v))
	for u, ok := neighbors[v].NextSet(0); ok; u, ok = neighbors[v].NextSet(u + 1) {
		if eliminated.Test(u) {
			continue
		}
		neighbors[u].InPlaceUnion(neighbors[v])
		neighbors[u].Clear(uint(v))
		neighbors[u].Clear(u)
	}
	for u := range neighbors {
		neighbors[u].Clear(uint(v))
	}
}
