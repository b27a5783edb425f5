package graph

// BayesNet is the append-only ordered sequence of conditionals produced by
// elimination. Conditional i results from eliminating the i-th variable of
// the run; together the sequence forms a directed acyclic factorization.
//
// The conditional type is opaque: the elimination core appends and iterates,
// nothing more.
type BayesNet[C any] struct {
	conds []C
}

// Append adds a conditional at the end of the net.
func (b *BayesNet[C]) Append(c C) {
	b.conds = append(b.conds, c)
}

// Len returns the number of conditionals.
func (b *BayesNet[C]) Len() int { return len(b.conds) }

// At returns the i-th conditional in elimination order.
func (b *BayesNet[C]) At(i int) C { return b.conds[i] }

// Conditionals returns the conditionals in elimination order. Callers must
// not mutate the returned slice.
func (b *BayesNet[C]) Conditionals() []C { return b.conds }
