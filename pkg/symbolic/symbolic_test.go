package symbolic

import (
	"testing"

	"github.com/factorbay/factorbay/pkg/elim"
	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/graph"
)

func TestFactorEliminate(t *testing.T) {
	f0 := NewFactor(0, 1)
	f1 := NewFactor(0, 2)

	cond, residual, err := f0.Eliminate([]graph.Factor[*Conditional]{f0, f1}, 0)
	if err != nil {
		t.Fatalf("Eliminate() error = %v", err)
	}

	if cond.Frontal() != 0 {
		t.Errorf("Frontal() = %d, want 0", cond.Frontal())
	}
	if got := cond.String(); got != "0 | 1 2" {
		t.Errorf("conditional = %q, want %q", got, "0 | 1 2")
	}

	if residual == nil {
		t.Fatal("residual = nil, want factor over {1, 2}")
	}
	vars := residual.Vars()
	if len(vars) != 2 || vars[0] != 1 || vars[1] != 2 {
		t.Errorf("residual vars = %v, want [1 2]", vars)
	}
}

func TestFactorEliminate_EmptyRemainder(t *testing.T) {
	// The union minus the eliminated variable is empty: a unary conditional
	// and no residual.
	f := NewFactor(3)

	cond, residual, err := f.Eliminate([]graph.Factor[*Conditional]{f}, 3)
	if err != nil {
		t.Fatalf("Eliminate() error = %v", err)
	}
	if got := cond.String(); got != "3" {
		t.Errorf("conditional = %q, want %q", got, "3")
	}
	if residual != nil {
		t.Errorf("residual = %v, want nil", residual)
	}
}

func TestFactorRelabel(t *testing.T) {
	f := NewFactor(0, 1)
	g := f.Relabel(func(v graph.Var) graph.Var { return v + 5 })

	if vars := g.Vars(); vars[0] != 5 || vars[1] != 6 {
		t.Errorf("relabeled vars = %v, want [5 6]", vars)
	}
	if vars := f.Vars(); vars[0] != 0 || vars[1] != 1 {
		t.Errorf("Relabel() mutated its receiver: %v", vars)
	}
}

func TestEliminate_Chain(t *testing.T) {
	g := NewGraph(
		[]graph.Var{0, 1},
		[]graph.Var{1, 2},
	)

	bn, err := Eliminate(g)
	if err != nil {
		t.Fatalf("Eliminate() error = %v", err)
	}

	want := []string{"0 | 1", "1 | 2", "2"}
	if bn.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", bn.Len(), len(want))
	}
	for i, w := range want {
		if got := bn.At(i).String(); got != w {
			t.Errorf("conditional %d = %q, want %q", i, got, w)
		}
	}
	if g.Len() != 0 {
		t.Errorf("graph has %d live factors after full elimination, want 0", g.Len())
	}
}

func TestEliminateUntil_Bounded(t *testing.T) {
	g := NewGraph(
		[]graph.Var{0, 1},
		[]graph.Var{1, 2},
	)

	bn, err := EliminateUntil(g, 1)
	if err != nil {
		t.Fatalf("EliminateUntil() error = %v", err)
	}
	if bn.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bn.Len())
	}
	if g.Len() != 2 {
		t.Errorf("live factors = %d, want 2 (f1 plus the residual)", g.Len())
	}
}

func TestEliminateOne_AbsentVariable(t *testing.T) {
	g := NewGraph([]graph.Var{0})
	idx := graph.NewVariableIndex(g)

	if _, err := EliminateOne(g, idx, 9); !errors.Is(err, errors.ErrCodeInvalidStateVariable) {
		t.Errorf("EliminateOne() error = %v, want INVALID_STATE_VARIABLE", err)
	}
}

func TestFastPathMatchesGenericEngine(t *testing.T) {
	build := func() *graph.Graph[*Conditional] {
		return NewGraph(
			[]graph.Var{0, 1},
			[]graph.Var{0, 2},
			[]graph.Var{1, 2, 3},
		)
	}

	fast, err := Eliminate(build())
	if err != nil {
		t.Fatalf("symbolic Eliminate() error = %v", err)
	}

	generic, err := elim.Eliminate(build())
	if err != nil {
		t.Fatalf("elim.Eliminate() error = %v", err)
	}

	if fast.Len() != generic.Len() {
		t.Fatalf("fast path produced %d conditionals, generic engine %d", fast.Len(), generic.Len())
	}
	for i := 0; i < fast.Len(); i++ {
		if got, want := fast.At(i).String(), generic.At(i).String(); got != want {
			t.Errorf("conditional %d = %q, generic engine %q", i, got, want)
		}
	}
}
