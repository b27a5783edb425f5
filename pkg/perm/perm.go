// Package perm implements bijective permutations over variable positions.
//
// A Permutation resolves elimination positions to original variable indices:
// position i holds the original index now occupying position i. Permutations
// choose elimination orders and relabel variables around sub-computations
// such as marginalization.
//
// All operations are non-destructive: a Permutation is immutable once built,
// and every operation returns a new value. Malformed construction arguments
// (duplicates, out-of-range indices, size mismatches) fail synchronously with
// a precondition error naming the offending index.
package perm

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/graph"
)

// Permutation is a bijection over variable positions {0, …, n−1}. The zero
// value is the empty permutation over zero variables.
type Permutation struct {
	toOrig []graph.Var // position -> original index
}

// Identity returns the permutation mapping every position to itself.
func Identity(n int) Permutation {
	p := Permutation{toOrig: make([]graph.Var, n)}
	for i := range p.toOrig {
		p.toOrig[i] = graph.Var(i)
	}
	return p
}

// FromSlice builds a permutation from an explicit position-to-original
// mapping. The mapping must be a bijection over [0, len(toOrig)).
func FromSlice(toOrig []graph.Var) (Permutation, error) {
	n := len(toOrig)
	seen := bitset.New(uint(n))
	for i, v := range toOrig {
		if int(v) < 0 || int(v) >= n {
			return Permutation{}, errors.New(errors.ErrCodePreconditionRange,
				"entry %d at position %d out of range [0, %d)", v, i, n)
		}
		if seen.Test(uint(v)) {
			return Permutation{}, errors.New(errors.ErrCodePreconditionDuplicate,
				"duplicate entry %d at position %d", v, i)
		}
		seen.Set(uint(v))
	}
	return Permutation{toOrig: append([]graph.Var(nil), toOrig...)}, nil
}

// PullToFront returns the permutation over [0, n) that places toFront (in the
// given order) at positions [0, len(toFront)), followed by the remaining
// indices in their original relative order. Fails on duplicate or
// out-of-range entries.
func PullToFront(toFront []graph.Var, n int) (Permutation, error) {
	pulled, err := mask(toFront, n)
	if err != nil {
		return Permutation{}, err
	}

	p := Permutation{toOrig: make([]graph.Var, n)}
	copy(p.toOrig, toFront)

	next := len(toFront)
	for j := 0; j < n; j++ {
		if !pulled.Test(uint(j)) {
			p.toOrig[next] = graph.Var(j)
			next++
		}
	}
	return p, nil
}

// PushToBack returns the permutation over [0, n) that places toBack (in the
// given order) at the tail positions [n−len(toBack), n), preceded by the
// remaining indices in their original relative order. Fails on duplicate or
// out-of-range entries.
func PushToBack(toBack []graph.Var, n int) (Permutation, error) {
	pushed, err := mask(toBack, n)
	if err != nil {
		return Permutation{}, err
	}

	p := Permutation{toOrig: make([]graph.Var, n)}
	copy(p.toOrig[n-len(toBack):], toBack)

	next := 0
	for j := 0; j < n; j++ {
		if !pushed.Test(uint(j)) {
			p.toOrig[next] = graph.Var(j)
			next++
		}
	}
	return p, nil
}

// mask validates list entries against [0, n) and returns their membership
// bitset.
func mask(list []graph.Var, n int) (*bitset.BitSet, error) {
	if len(list) > n {
		return nil, errors.New(errors.ErrCodePreconditionSize,
			"list of %d entries exceeds size %d", len(list), n)
	}
	m := bitset.New(uint(n))
	for _, v := range list {
		if int(v) < 0 || int(v) >= n {
			return nil, errors.New(errors.ErrCodePreconditionRange,
				"entry %d out of range [0, %d)", v, n)
		}
		if m.Test(uint(v)) {
			return nil, errors.New(errors.ErrCodePreconditionDuplicate, "duplicate entry %d", v)
		}
		m.Set(uint(v))
	}
	return m, nil
}

// Len returns the number of positions.
func (p Permutation) Len() int { return len(p.toOrig) }

// At returns the original index occupying position i. Passing i outside
// [0, Len()) panics; callers needing a checked lookup use Lookup.
func (p Permutation) At(i int) graph.Var { return p.toOrig[i] }

// Lookup is the checked form of At, returning an invalid-state error instead
// of panicking on an out-of-range position.
func (p Permutation) Lookup(i int) (graph.Var, error) {
	if i < 0 || i >= len(p.toOrig) {
		return 0, errors.New(errors.ErrCodeInvalidStateVariable,
			"position %d outside permutation of size %d", i, len(p.toOrig))
	}
	return p.toOrig[i], nil
}

// Compose returns the composition σ′(j) = σ(τ(j)) where σ is the receiver
// and τ is other: other is applied first. Every entry of other must be a
// valid position of the receiver.
func (p Permutation) Compose(other Permutation) (Permutation, error) {
	out := Permutation{toOrig: make([]graph.Var, other.Len())}
	for j, t := range other.toOrig {
		if int(t) >= len(p.toOrig) {
			return Permutation{}, errors.New(errors.ErrCodePreconditionRange,
				"entry %d at position %d outside composed domain [0, %d)", t, j, len(p.toOrig))
		}
		out.toOrig[j] = p.toOrig[t]
	}
	return out, nil
}

// PartialPermutation reorders the subset of positions named by selector,
// leaving all other positions untouched: for each subset position s, the
// entry at selector[s] becomes σ(selector[partial(s)]). The selector and
// partial must have equal size, selector entries must be valid positions of
// σ, and partial must be a bijection over the subset positions. Global
// bijectivity is then preserved.
func (p Permutation) PartialPermutation(selector []graph.Var, partial Permutation) (Permutation, error) {
	if len(selector) != partial.Len() {
		return Permutation{}, errors.New(errors.ErrCodePreconditionSize,
			"selector size %d != partial size %d", len(selector), partial.Len())
	}
	out := Permutation{toOrig: append([]graph.Var(nil), p.toOrig...)}
	for s := range selector {
		dst := selector[s]
		src := selector[partial.At(s)]
		if int(dst) < 0 || int(dst) >= len(p.toOrig) || int(src) < 0 || int(src) >= len(p.toOrig) {
			return Permutation{}, errors.New(errors.ErrCodePreconditionRange,
				"selector entry outside permutation of size %d", len(p.toOrig))
		}
		out.toOrig[dst] = p.toOrig[src]
	}
	return out, nil
}

// Inverse returns the permutation τ with τ(σ(i)) = i for every position i.
// The receiver must be a full bijection over [0, Len()).
func (p Permutation) Inverse() (Permutation, error) {
	n := len(p.toOrig)
	out := Permutation{toOrig: make([]graph.Var, n)}
	seen := bitset.New(uint(n))
	for i, v := range p.toOrig {
		if int(v) < 0 || int(v) >= n {
			return Permutation{}, errors.New(errors.ErrCodePreconditionRange,
				"entry %d at position %d out of range [0, %d)", v, i, n)
		}
		if seen.Test(uint(v)) {
			return Permutation{}, errors.New(errors.ErrCodePreconditionDuplicate,
				"duplicate entry %d at position %d", v, i)
		}
		seen.Set(uint(v))
		out.toOrig[v] = graph.Var(i)
	}
	return out, nil
}

// Equal reports element-wise equality.
func (p Permutation) Equal(other Permutation) bool {
	if len(p.toOrig) != len(other.toOrig) {
		return false
	}
	for i := range p.toOrig {
		if p.toOrig[i] != other.toOrig[i] {
			return false
		}
	}
	return true
}

// String renders the position-to-original mapping on one line.
func (p Permutation) String() string {
	parts := make([]string, len(p.toOrig))
	for i, v := range p.toOrig {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
