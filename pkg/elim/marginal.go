package elim

import (
	"github.com/factorbay/factorbay/pkg/graph"
	"github.com/factorbay/factorbay/pkg/perm"
)

// Marginal computes the joint marginal over the requested variables without
// eliminating them: it relabels a private copy of the graph so the requested
// variables occupy the tail of the ordering, eliminates everything before
// them, and relabels the surviving residual factors back to the original
// variable indices. The input graph is left untouched.
//
// Each call rebuilds and discards an ordering and re-eliminates from scratch.
// Callers needing many marginals from one problem should use a persistent
// clique-tree estimator instead, which this core deliberately does not
// provide.
func Marginal[C any](g *graph.Graph[C], variables []graph.Var, opts ...Option) (*graph.Graph[C], error) {
	n := g.NumVars()

	p, err := perm.PushToBack(variables, n)
	if err != nil {
		return nil, err
	}
	toPos, err := p.Inverse()
	if err != nil {
		return nil, err
	}

	// Work on a private copy relabeled so the requested variables sit at
	// positions [n-len(variables), n).
	work := g.Clone()
	work.Relabel(func(v graph.Var) graph.Var { return toPos.At(int(v)) })

	// A caller-supplied index refers to the original labels, so the bounded
	// run always builds a fresh one over the relabeled copy.
	runOpts := append(append([]Option(nil), opts...), WithIndex(nil))

	boundary := n - len(variables)
	if _, err := EliminateUntil(work, boundary, runOpts...); err != nil {
		return nil, err
	}

	// The survivors are the marginal; relabel them back.
	work.Relabel(func(v graph.Var) graph.Var { return p.At(int(v)) })

	out := graph.New[C]()
	out.Append(work)
	return out, nil
}
