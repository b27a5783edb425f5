package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/graph"
)

// stubPattern is a hand-built adjacency pattern.
type stubPattern struct {
	n       int
	touched map[graph.Var][]graph.Handle
}

func (p stubPattern) Size() int { return p.n }

func (p stubPattern) FactorsTouching(v graph.Var) []graph.Handle { return p.touched[v] }

func TestMinDegree_Chain(t *testing.T) {
	// x0 - x1 - x2 - x3 chain: f0(x0,x1), f1(x1,x2), f2(x2,x3).
	p := stubPattern{n: 4, touched: map[graph.Var][]graph.Handle{
		0: {0}, 1: {0, 1}, 2: {1, 2}, 3: {2},
	}}

	ordering, err := MinDegree{}.ComputeOrdering(p, nil)
	require.NoError(t, err)
	require.Equal(t, 4, ordering.Len())

	// Endpoints have degree 1 and are taken first, lowest index on ties.
	require.Equal(t, graph.Var(0), ordering.At(0))

	// Totality: the inverse exists.
	_, err = ordering.Inverse()
	require.NoError(t, err)
}

func TestMinDegree_ConstrainLast(t *testing.T) {
	p := stubPattern{n: 4, touched: map[graph.Var][]graph.Handle{
		0: {0}, 1: {0, 1}, 2: {1, 2}, 3: {2},
	}}

	ordering, err := MinDegree{}.ComputeOrdering(p, []graph.Var{1, 0})
	require.NoError(t, err)

	// The constrained variables occupy the tail.
	tail := map[graph.Var]bool{
		ordering.At(2): true,
		ordering.At(3): true,
	}
	require.True(t, tail[0], "variable 0 should be in the tail, got ordering %v", ordering)
	require.True(t, tail[1], "variable 1 should be in the tail, got ordering %v", ordering)
}

func TestMinDegree_Disconnected(t *testing.T) {
	// Two components plus an isolated variable with no factors at all.
	p := stubPattern{n: 5, touched: map[graph.Var][]graph.Handle{
		0: {0}, 1: {0},
		3: {1}, 4: {1},
	}}

	ordering, err := MinDegree{}.ComputeOrdering(p, nil)
	require.NoError(t, err)
	require.Equal(t, 5, ordering.Len())

	// Totality even with the isolated variable 2.
	_, err = ordering.Inverse()
	require.NoError(t, err)

	// The isolated variable has degree zero and is eliminated first.
	require.Equal(t, graph.Var(2), ordering.At(0))
}

func TestMinDegree_Empty(t *testing.T) {
	ordering, err := MinDegree{}.ComputeOrdering(stubPattern{n: 0}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, ordering.Len())
}

func TestMinDegree_ConstrainedOutOfRange(t *testing.T) {
	p := stubPattern{n: 2, touched: map[graph.Var][]graph.Handle{0: {0}, 1: {0}}}

	_, err := MinDegree{}.ComputeOrdering(p, []graph.Var{5})
	require.True(t, errors.Is(err, errors.ErrCodePreconditionRange), "got %v", err)
}

func TestMinDegree_Deterministic(t *testing.T) {
	p := stubPattern{n: 6, touched: map[graph.Var][]graph.Handle{
		0: {0, 1}, 1: {0, 2}, 2: {1, 2, 3}, 3: {3, 4}, 4: {4, 5}, 5: {5, 0},
	}}

	first, err := MinDegree{}.ComputeOrdering(p, nil)
	require.NoError(t, err)
	second, err := MinDegree{}.ComputeOrdering(p, nil)
	require.NoError(t, err)
	require.True(t, first.Equal(second), "orderings differ: %v vs %v", first, second)
}
