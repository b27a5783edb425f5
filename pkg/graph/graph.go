package graph

import (
	"fmt"
	"strings"

	"github.com/factorbay/factorbay/pkg/errors"
)

// Graph is an arena of factors mutated in place during elimination. Factors
// are removed and residuals inserted as variables are eliminated; removal
// tombstones the arena slot so that concurrently held handles of other
// factors remain valid.
//
// The zero value is an empty graph ready for use. Graph is not safe for
// concurrent use: elimination assumes a single writer, and concurrent callers
// must operate on private copies obtained via [Graph.Clone].
type Graph[C any] struct {
	arena []Factor[C] // nil entries are tombstones
	live  int
}

// New creates a graph holding the given factors, in order.
func New[C any](factors ...Factor[C]) *Graph[C] {
	g := &Graph[C]{}
	for _, f := range factors {
		g.Add(f)
	}
	return g
}

// Add inserts a factor and returns its handle. Handles are dense and
// ascending in insertion order.
func (g *Graph[C]) Add(f Factor[C]) Handle {
	g.arena = append(g.arena, f)
	g.live++
	return Handle(len(g.arena) - 1)
}

// Factor returns the live factor at h, or an error if h is out of range or
// tombstoned.
func (g *Graph[C]) Factor(h Handle) (Factor[C], error) {
	if h < 0 || int(h) >= len(g.arena) {
		return nil, errors.New(errors.ErrCodeInvalidStateHandle, "handle %d out of range [0, %d)", h, len(g.arena))
	}
	f := g.arena[h]
	if f == nil {
		return nil, errors.New(errors.ErrCodeInvalidStateHandle, "handle %d refers to a removed factor", h)
	}
	return f, nil
}

// Remove tombstones the factor at h. The slot is never reused; other handles
// stay valid.
func (g *Graph[C]) Remove(h Handle) error {
	if _, err := g.Factor(h); err != nil {
		return err
	}
	g.arena[h] = nil
	g.live--
	return nil
}

// Len returns the number of live factors.
func (g *Graph[C]) Len() int { return g.live }

// Handles returns the handles of all live factors in ascending order.
func (g *Graph[C]) Handles() []Handle {
	hs := make([]Handle, 0, g.live)
	for i, f := range g.arena {
		if f != nil {
			hs = append(hs, Handle(i))
		}
	}
	return hs
}

// Factors returns all live factors in handle order.
func (g *Graph[C]) Factors() []Factor[C] {
	fs := make([]Factor[C], 0, g.live)
	for _, f := range g.arena {
		if f != nil {
			fs = append(fs, f)
		}
	}
	return fs
}

// NumVars returns one past the highest variable index touched by any live
// factor, i.e. the problem size n for a densely indexed problem. An empty
// graph has zero variables.
func (g *Graph[C]) NumVars() int {
	n := 0
	for _, f := range g.arena {
		if f == nil {
			continue
		}
		for _, v := range f.Vars() {
			if int(v)+1 > n {
				n = int(v) + 1
			}
		}
	}
	return n
}

// Clone returns a shallow copy sharing factor values with the receiver.
// Factors are read-only to the engine, so a clone is the private copy the
// single-writer contract asks concurrent callers to work on.
func (g *Graph[C]) Clone() *Graph[C] {
	c := &Graph[C]{
		arena: make([]Factor[C], len(g.arena)),
		live:  g.live,
	}
	copy(c.arena, g.arena)
	return c
}

// Relabel replaces every live factor with a copy whose variables are renamed
// through rename. Tombstones and handle assignment are preserved.
func (g *Graph[C]) Relabel(rename func(Var) Var) {
	for i, f := range g.arena {
		if f != nil {
			g.arena[i] = f.Relabel(rename)
		}
	}
}

// Append adds every live factor of other to g, in other's handle order.
func (g *Graph[C]) Append(other *Graph[C]) {
	for _, f := range other.arena {
		if f != nil {
			g.Add(f)
		}
	}
}

// String renders one line per live factor for diagnostics.
func (g *Graph[C]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph with %d factors:\n", g.live)
	for i, f := range g.arena {
		if f == nil {
			continue
		}
		fmt.Fprintf(&sb, "  [%d] vars %v\n", i, f.Vars())
	}
	return sb.String()
}
