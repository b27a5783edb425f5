package slots

import (
	"testing"

	"github.com/factorbay/factorbay/pkg/graph"
)

func TestNew_Chain(t *testing.T) {
	// f0(x0, x1), f1(x1, x2)
	vs := New([][]graph.Var{{0, 1}, {1, 2}})

	if vs.NumFactors() != 2 {
		t.Fatalf("NumFactors() = %d, want 2", vs.NumFactors())
	}
	if vs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", vs.Len())
	}

	tests := []struct {
		v    graph.Var
		want []Slot
	}{
		{0, []Slot{SlotAt(0), Absent}},
		{1, []Slot{SlotAt(1), SlotAt(0)}},
		{2, []Slot{Absent, SlotAt(1)}},
	}

	for _, tt := range tests {
		sv, ok := vs.SlotsOf(tt.v)
		if !ok {
			t.Fatalf("SlotsOf(%d) not found", tt.v)
		}
		if len(sv) != len(tt.want) {
			t.Fatalf("SlotsOf(%d) length = %d, want %d", tt.v, len(sv), len(tt.want))
		}
		for f, w := range tt.want {
			if sv[f] != w {
				t.Errorf("slots[%d][%d] = %v, want %v", tt.v, f, sv[f], w)
			}
		}
	}
}

func TestNew_FirstEncounterOrder(t *testing.T) {
	vs := New([][]graph.Var{{3, 1}, {0, 1, 2}})

	want := []graph.Var{3, 1, 0, 2}
	got := vs.Vars()
	if len(got) != len(want) {
		t.Fatalf("Vars() length = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Vars()[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestSlotVectorShape(t *testing.T) {
	// Every variable touched by any factor gets a full-length slot vector,
	// with absence exactly where the factor does not touch it.
	lists := [][]graph.Var{{0, 2}, {1}, {2, 3, 0}}
	vs := New(lists)

	for _, v := range vs.Vars() {
		sv, _ := vs.SlotsOf(v)
		if len(sv) != len(lists) {
			t.Fatalf("slot vector of %d has length %d, want %d", v, len(sv), len(lists))
		}
		for f, list := range lists {
			col := -1
			for c, u := range list {
				if u == v {
					col = c
				}
			}
			if col >= 0 {
				if !sv[f].Present() || sv[f].Col() != col {
					t.Errorf("slots[%d][%d] = %v, want column %d", v, f, sv[f], col)
				}
			} else if sv[f].Present() {
				t.Errorf("slots[%d][%d] = %v, want absent", v, f, sv[f])
			}
		}
	}
}

func TestSlotsOf_Untouched(t *testing.T) {
	vs := New([][]graph.Var{{0}})
	if _, ok := vs.SlotsOf(7); ok {
		t.Error("SlotsOf(7) found a slot vector for an untouched variable")
	}
}

func TestString(t *testing.T) {
	vs := New([][]graph.Var{{0, 1}, {1, 2}})
	want := "Var:\t0\t1\t2\n    \t0\t1\tx\n    \tx\t0\t1\n"
	if got := vs.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got := New(nil).String(); got != "empty" {
		t.Errorf("String() on empty = %q, want %q", got, "empty")
	}
}

func TestFromFactors(t *testing.T) {
	fs := []graph.Factor[struct{}]{stubFactor{0, 1}, stubFactor{1, 2}}
	vs := FromFactors(fs)

	sv, ok := vs.SlotsOf(1)
	if !ok {
		t.Fatal("SlotsOf(1) not found")
	}
	if sv[0] != SlotAt(1) || sv[1] != SlotAt(0) {
		t.Errorf("slots[1] = %v, want [1 0]", sv)
	}
}

// stubFactor carries only variable membership.
type stubFactor []graph.Var

func (s stubFactor) Vars() []graph.Var { return s }

func (s stubFactor) Eliminate([]graph.Factor[struct{}], graph.Var) (struct{}, graph.Factor[struct{}], error) {
	return struct{}{}, nil, nil
}

func (s stubFactor) Relabel(rename func(graph.Var) graph.Var) graph.Factor[struct{}] {
	out := make(stubFactor, len(s))
	for i, v := range s {
		out[i] = rename(v)
	}
	return out
}
