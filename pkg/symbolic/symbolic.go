// Package symbolic implements the structure-only specialization of
// elimination: factors that carry variable membership and nothing else.
//
// Eliminating a variable symbolically produces a conditional that depends on
// the union of the other variables appearing in the input factors, and a
// residual factor over exactly that union minus the eliminated variable.
// This lets ordering and sparsity-pattern analyses run without materializing
// numeric factors; it is a strict special case of the general engine
// contract, and the fast-path wrappers below skip interface dispatch
// entirely.
package symbolic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/factorbay/factorbay/pkg/graph"
	"github.com/factorbay/factorbay/pkg/slots"
)

// Conditional is the output of symbolically eliminating one variable: the
// frontal variable together with the parents it depends on, ascending.
type Conditional struct {
	frontal graph.Var
	parents []graph.Var
}

// Frontal returns the eliminated variable.
func (c *Conditional) Frontal() graph.Var { return c.frontal }

// Parents returns the variables the conditional depends on, ascending.
// Callers must not mutate the returned slice.
func (c *Conditional) Parents() []graph.Var { return c.parents }

// String renders "v | p1 p2 …", or just "v" for a unary conditional.
func (c *Conditional) String() string {
	if len(c.parents) == 0 {
		return fmt.Sprintf("%d", c.frontal)
	}
	parts := make([]string, len(c.parents))
	for i, p := range c.parents {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return fmt.Sprintf("%d | %s", c.frontal, strings.Join(parts, " "))
}

// Factor is a structure-only factor: an ordered list of touched variables.
type Factor struct {
	vars []graph.Var
}

// NewFactor creates a factor touching the given variables, in order.
func NewFactor(vars ...graph.Var) *Factor {
	return &Factor{vars: append([]graph.Var(nil), vars...)}
}

// Vars implements graph.Factor.
func (f *Factor) Vars() []graph.Var { return f.vars }

// Eliminate implements graph.Factor: the joint over the adjacent factors is
// their variable union, aligned through a VariableSlots index the way numeric
// combiners align columns. The conditional depends on the union minus
// target; when that remainder is empty the conditional is unary and no
// residual is produced.
func (f *Factor) Eliminate(adjacent []graph.Factor[*Conditional], target graph.Var) (*Conditional, graph.Factor[*Conditional], error) {
	vs := slots.FromFactors(adjacent)

	remainder := make([]graph.Var, 0, vs.Len())
	for _, v := range vs.Vars() {
		if v != target {
			remainder = append(remainder, v)
		}
	}
	slices.Sort(remainder)

	cond := &Conditional{frontal: target, parents: remainder}
	if len(remainder) == 0 {
		return cond, nil, nil
	}
	return cond, NewFactor(remainder...), nil
}

// Relabel implements graph.Factor.
func (f *Factor) Relabel(rename func(graph.Var) graph.Var) graph.Factor[*Conditional] {
	out := make([]graph.Var, len(f.vars))
	for i, v := range f.vars {
		out[i] = rename(v)
	}
	return &Factor{vars: out}
}

// String renders the touched variables.
func (f *Factor) String() string {
	parts := make([]string, len(f.vars))
	for i, v := range f.vars {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "f(" + strings.Join(parts, " ") + ")"
}

// NewGraph builds a structure-only graph with one factor per variable list.
func NewGraph(varLists ...[]graph.Var) *graph.Graph[*Conditional] {
	g := graph.New[*Conditional]()
	for _, vars := range varLists {
		g.Add(NewFactor(vars...))
	}
	return g
}
