package graph

import (
	"slices"

	"github.com/factorbay/factorbay/pkg/errors"
)

// ValidateIndex cross-checks an adjacency index against the live state of a
// graph. It verifies that every live factor is registered under exactly the
// variables it touches, and that no entry refers to a removed or out-of-range
// handle. Elimination keeps the pair consistent on its own; this check exists
// for callers that thread a long-lived index through their own mutations.
func ValidateIndex[C any](g *Graph[C], idx *VariableIndex) error {
	for v := 0; v < idx.Size(); v++ {
		for _, h := range idx.FactorsTouching(Var(v)) {
			f, err := g.Factor(h)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidStateHandle, err, "index entry for variable %d", v)
			}
			if !slices.Contains(f.Vars(), Var(v)) {
				return errors.New(errors.ErrCodeInvalidStateHandle,
					"factor %d registered under variable %d it does not touch", h, v)
			}
		}
	}
	for _, h := range g.Handles() {
		f, _ := g.Factor(h)
		for _, v := range f.Vars() {
			if !slices.Contains(idx.FactorsTouching(v), h) {
				return errors.New(errors.ErrCodeInvalidStateVariable,
					"live factor %d touching variable %d missing from index", h, v)
			}
		}
	}
	return nil
}
