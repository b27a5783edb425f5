// Package slots aligns the variable columns of heterogeneous factors before
// they are combined.
//
// Each factor stores its variables in its own column order. When several
// factors are combined into a joint, the combiner needs to know, for every
// variable, which column of which factor to read. VariableSlots is that
// derived index: per variable, one slot per factor position, with an explicit
// absence marker where a factor does not touch the variable.
//
// A VariableSlots is built fresh immediately before a combination step and
// discarded after use; it is a value object, never mutated once built.
package slots

import (
	"fmt"
	"strings"

	"github.com/factorbay/factorbay/pkg/graph"
)

// Slot records where a variable lives within one factor: either the column
// position, or an explicit absent marker. The zero value is absent.
type Slot struct {
	col     int
	present bool
}

// Absent is the slot of a variable in a factor that does not touch it.
var Absent = Slot{}

// SlotAt returns a present slot at the given column.
func SlotAt(col int) Slot { return Slot{col: col, present: true} }

// Present reports whether the variable appears in the factor.
func (s Slot) Present() bool { return s.present }

// Col returns the column position. Only meaningful when Present is true.
func (s Slot) Col() int { return s.col }

// String renders the column, or "x" for an absent slot.
func (s Slot) String() string {
	if !s.present {
		return "x"
	}
	return fmt.Sprintf("%d", s.col)
}

// VariableSlots maps every variable touched by a factor list to its
// per-factor slot vector. Variable iteration order is first-encounter order
// over the list; this affects diagnostics only, never semantics.
type VariableSlots struct {
	order      []graph.Var
	slots      map[graph.Var][]Slot
	numFactors int
}

// New builds the slot index from the ordered touched-variable lists of a
// factor list: varsPerFactor[f] holds the variables of factor f in column
// order.
func New(varsPerFactor [][]graph.Var) *VariableSlots {
	vs := &VariableSlots{
		slots:      make(map[graph.Var][]Slot),
		numFactors: len(varsPerFactor),
	}
	for f, vars := range varsPerFactor {
		for col, v := range vars {
			sv, ok := vs.slots[v]
			if !ok {
				sv = make([]Slot, vs.numFactors)
				vs.slots[v] = sv
				vs.order = append(vs.order, v)
			}
			sv[f] = SlotAt(col)
		}
	}
	return vs
}

// FromFactors builds the slot index directly from factors.
func FromFactors[C any](factors []graph.Factor[C]) *VariableSlots {
	varsPerFactor := make([][]graph.Var, len(factors))
	for i, f := range factors {
		varsPerFactor[i] = f.Vars()
	}
	return New(varsPerFactor)
}

// Len returns the number of distinct variables touched by the factor list.
func (vs *VariableSlots) Len() int { return len(vs.order) }

// NumFactors returns the length of every slot vector.
func (vs *VariableSlots) NumFactors() int { return vs.numFactors }

// Vars returns the variables in first-encounter order. Callers must not
// mutate the returned slice.
func (vs *VariableSlots) Vars() []graph.Var { return vs.order }

// SlotsOf returns the per-factor slot vector of v. The second result is
// false for a variable no factor touches.
func (vs *VariableSlots) SlotsOf(v graph.Var) ([]Slot, bool) {
	sv, ok := vs.slots[v]
	return sv, ok
}

// String renders a diagnostic table: a header row of variables, then one row
// per factor position with "x" marking absent slots.
func (vs *VariableSlots) String() string {
	if len(vs.order) == 0 {
		return "empty"
	}
	var sb strings.Builder
	sb.WriteString("Var:")
	for _, v := range vs.order {
		fmt.Fprintf(&sb, "\t%d", v)
	}
	sb.WriteString("\n")
	for f := 0; f < vs.numFactors; f++ {
		sb.WriteString("    ")
		for _, v := range vs.order {
			fmt.Fprintf(&sb, "\t%s", vs.slots[v][f])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
