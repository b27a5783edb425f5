package graph

// Var identifies a variable in the current problem. Variable indices are
// dense: a problem over n variables uses exactly the indices [0, n).
type Var int

// Handle identifies a factor within its owning Graph's arena. Handles are
// assigned in insertion order and are never reused within one Graph; removing
// a factor tombstones its slot instead of compacting the arena.
type Handle int

// Factor is the capability the elimination engine requires from any concrete
// factor representation. The engine never inspects a factor beyond these
// three operations, and never mutates a factor's internal payload.
//
// C is the conditional type produced by elimination. It is opaque to the
// engine: conditionals are appended to a BayesNet and never inspected.
type Factor[C any] interface {
	// Vars returns the ordered set of variables this factor touches.
	// Callers must not mutate the returned slice.
	Vars() []Var

	// Eliminate combines the given adjacent factors (all factors currently
	// touching target, including the receiver) and eliminates target from
	// their product. It returns the resulting conditional and a residual
	// factor over the remaining variables, or a nil residual when no
	// variables remain. Eliminate must be deterministic given identical
	// inputs and must not mutate any input factor.
	Eliminate(adjacent []Factor[C], target Var) (C, Factor[C], error)

	// Relabel returns a copy of the factor with every variable v replaced
	// by rename(v). The receiver is left unchanged. Used by marginal
	// computation to permute a problem around a sub-computation.
	Relabel(rename func(Var) Var) Factor[C]
}
