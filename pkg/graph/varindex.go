package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/factorbay/factorbay/pkg/errors"
)

// VariableIndex maps each variable to the handles of the factors currently
// touching it. It is the adjacency structure the elimination engine keeps
// live while mutating a graph: factors consumed by an elimination step are
// erased from every variable's entry, and the step's residual is registered
// under every variable it touches.
//
// Like Graph, a VariableIndex assumes a single writer.
type VariableIndex struct {
	entries [][]Handle
}

// NewVariableIndex scans the live factors of g and builds the full adjacency
// index over its variables [0, g.NumVars()).
func NewVariableIndex[C any](g *Graph[C]) *VariableIndex {
	idx := &VariableIndex{entries: make([][]Handle, g.NumVars())}
	for _, h := range g.Handles() {
		f, _ := g.Factor(h)
		for _, v := range f.Vars() {
			idx.entries[v] = append(idx.entries[v], h)
		}
	}
	return idx
}

// Size returns the number of variables covered by the index.
func (idx *VariableIndex) Size() int { return len(idx.entries) }

// FactorsTouching returns the handles of the factors currently touching v,
// in registration order. The result is nil for a variable with no live
// factors or outside the index. Callers must not mutate the returned slice.
func (idx *VariableIndex) FactorsTouching(v Var) []Handle {
	if int(v) < 0 || int(v) >= len(idx.entries) {
		return nil
	}
	return idx.entries[v]
}

// Insert registers factor h as touching v, growing the index if v lies
// beyond its current size.
func (idx *VariableIndex) Insert(v Var, h Handle) {
	for int(v) >= len(idx.entries) {
		idx.entries = append(idx.entries, nil)
	}
	idx.entries[v] = append(idx.entries[v], h)
}

// Erase removes factor h from v's entry. It is an invalid-state error to
// erase a pairing that is not registered.
func (idx *VariableIndex) Erase(v Var, h Handle) error {
	if int(v) < 0 || int(v) >= len(idx.entries) {
		return errors.New(errors.ErrCodeInvalidStateVariable, "variable %d outside index of size %d", v, len(idx.entries))
	}
	i := slices.Index(idx.entries[v], h)
	if i < 0 {
		return errors.New(errors.ErrCodeInvalidStateHandle, "factor %d not registered under variable %d", h, v)
	}
	idx.entries[v] = slices.Delete(idx.entries[v], i, i+1)
	return nil
}

// Equal reports whether two indexes register the same factors under the same
// variables in the same order.
func (idx *VariableIndex) Equal(other *VariableIndex) bool {
	if len(idx.entries) != len(other.entries) {
		return false
	}
	for v := range idx.entries {
		if !slices.Equal(idx.entries[v], other.entries[v]) {
			return false
		}
	}
	return true
}

// String renders one line per variable for diagnostics.
func (idx *VariableIndex) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "variable index over %d variables:\n", len(idx.entries))
	for v, hs := range idx.entries {
		fmt.Fprintf(&sb, "  %d: %v\n", v, hs)
	}
	return sb.String()
}
