package elim

import (
	"time"

	"github.com/factorbay/factorbay/pkg/errors"
	"github.com/factorbay/factorbay/pkg/observability"
	"github.com/factorbay/factorbay/pkg/ordering"
	"github.com/factorbay/factorbay/pkg/perm"
)

// FillReducingPermutation computes a fill-reducing elimination order from the
// sparsity pattern in idx by delegating to the configured ordering oracle
// (ordering.MinDegree unless WithOracle substitutes another). Variables named
// by WithConstrainedLast are forced to the tail of the ordering, which keeps
// marginal targets cheap.
//
// The returned permutation maps elimination position to original variable.
// The oracle contract requires a total bijection over all variables; a
// violation is surfaced as an oracle failure, since it indicates a
// collaborator bug rather than a property of the problem.
func FillReducingPermutation(idx ordering.Pattern, opts ...Option) (perm.Permutation, error) {
	cfg := newConfig(opts)

	start := time.Now()
	observability.Ordering().OnOrderingStart(idx.Size(), len(cfg.constrainLast))

	p, err := cfg.oracle.ComputeOrdering(idx, cfg.constrainLast)
	observability.Ordering().OnOrderingComplete(idx.Size(), time.Since(start), err)
	if err != nil {
		return perm.Permutation{}, err
	}

	if p.Len() != idx.Size() {
		return perm.Permutation{}, errors.New(errors.ErrCodeOracleIncomplete,
			"oracle returned %d positions for %d variables", p.Len(), idx.Size())
	}
	if _, err := p.Inverse(); err != nil {
		return perm.Permutation{}, errors.Wrap(errors.ErrCodeOracleIncomplete, err,
			"oracle ordering is not a bijection")
	}

	cfg.logger.Debug("computed fill-reducing ordering",
		"variables", idx.Size(),
		"constrained", len(cfg.constrainLast),
		"duration", time.Since(start))
	return p, nil
}
