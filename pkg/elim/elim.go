package elim

import (
	"time"

	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/graph"
	"github.com/factorbay/factorbay/pkg/observability"
)

// EliminateOne eliminates a single variable, updating the graph and the
// adjacency index in place. It gathers the factors currently touching v,
// invokes the factor capability to combine them and eliminate v, removes the
// consumed factors from both structures, registers the residual factor (if
// any) under every variable it touches, and returns the resulting
// conditional.
//
// It is an invalid-state error to eliminate a variable with no live factors.
// In-place mutation of both arguments is an explicit performance contract:
// callers wanting atomicity run against a clone.
func EliminateOne[C any](g *graph.Graph[C], idx *graph.VariableIndex, v graph.Var) (C, error) {
	var zero C

	handles := idx.FactorsTouching(v)
	if len(handles) == 0 {
		return zero, errors.New(errors.ErrCodeInvalidStateVariable,
			"variable %d has no live factors in the index", v)
	}

	start := time.Now()
	observability.Elimination().OnStepStart(int(v), len(handles))

	// Snapshot: idx entries mutate below.
	consumed := append([]graph.Handle(nil), handles...)
	adjacent := make([]graph.Factor[C], len(consumed))
	for i, h := range consumed {
		f, err := g.Factor(h)
		if err != nil {
			observability.Elimination().OnStepComplete(int(v), time.Since(start), err)
			return zero, errors.Wrap(errors.ErrCodeInvalidStateHandle, err,
				"adjacency entry for variable %d", v)
		}
		adjacent[i] = f
	}

	cond, residual, err := adjacent[0].Eliminate(adjacent, v)
	if err != nil {
		observability.Elimination().OnStepComplete(int(v), time.Since(start), err)
		return zero, err
	}

	// Unlink the consumed factors from the graph and from every variable's
	// adjacency entry.
	for i, h := range consumed {
		for _, u := range adjacent[i].Vars() {
			if err := idx.Erase(u, h); err != nil {
				observability.Elimination().OnStepComplete(int(v), time.Since(start), err)
				return zero, err
			}
		}
		if err := g.Remove(h); err != nil {
			observability.Elimination().OnStepComplete(int(v), time.Since(start), err)
			return zero, err
		}
	}

	// Insert the residual and register it under every variable it touches.
	if residual != nil {
		h := g.Add(residual)
		for _, u := range residual.Vars() {
			idx.Insert(u, h)
		}
	}

	observability.Elimination().OnStepComplete(int(v), time.Since(start), nil)
	return cond, nil
}

// Eliminate eliminates all variables of g in their natural order 0..n−1 and
// returns the resulting Bayes net with exactly one conditional per variable.
// The graph is fully consumed. Eliminate does not choose an ordering: callers
// must already have permuted the problem into a good order, or use
// FillReducingPermutation first.
func Eliminate[C any](g *graph.Graph[C], opts ...Option) (*graph.BayesNet[C], error) {
	return EliminateUntil(g, g.NumVars(), opts...)
}

// EliminateUntil eliminates variables 0..bound−1 only, leaving variables at
// or beyond bound and their factors untouched. Splitting one run into
// sequential bounded runs over the same graph and index is observably
// equivalent to a single full run.
func EliminateUntil[C any](g *graph.Graph[C], bound int, opts ...Option) (*graph.BayesNet[C], error) {
	cfg := newConfig(opts)

	idx := cfg.index
	if idx == nil {
		idx = graph.NewVariableIndex(g)
	} else if cfg.validate {
		if err := graph.ValidateIndex(g, idx); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	observability.Elimination().OnRunStart(bound, g.Len())
	cfg.logger.Info("eliminating", "bound", bound, "factors", g.Len())

	bn := &graph.BayesNet[C]{}
	for v := 0; v < bound; v++ {
		cond, err := EliminateOne(g, idx, graph.Var(v))
		if err != nil {
			observability.Elimination().OnRunComplete(bn.Len(), time.Since(start), err)
			return nil, err
		}
		cfg.logger.Debug("eliminated variable", "variable", v, "remaining", g.Len())
		bn.Append(cond)
	}

	duration := time.Since(start)
	observability.Elimination().OnRunComplete(bn.Len(), duration, nil)
	cfg.logger.Info("elimination complete",
		"conditionals", bn.Len(),
		"remaining", g.Len(),
		"duration", duration)
	return bn, nil
}
