package elim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/factorbay/factorbay/pkg/graph"
	"github.com/factorbay/factorbay/pkg/ordering"
)

// config collects the per-run settings of the engine entry points.
type config struct {
	index         *graph.VariableIndex
	oracle        ordering.Oracle
	constrainLast []graph.Var
	logger        *log.Logger
	validate      bool
}

// Option configures an elimination run or an ordering computation.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		oracle: ordering.MinDegree{},
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIndex reuses a caller-supplied adjacency index instead of building a
// fresh one from the graph. The index must match the graph's live state; the
// run mutates it in place.
func WithIndex(idx *graph.VariableIndex) Option {
	return func(cfg *config) { cfg.index = idx }
}

// WithOracle substitutes the ordering oracle used by
// FillReducingPermutation. The default is ordering.MinDegree.
func WithOracle(o ordering.Oracle) Option {
	return func(cfg *config) {
		if o != nil {
			cfg.oracle = o
		}
	}
}

// WithConstrainedLast forces the named variables to the tail of a computed
// ordering, keeping marginal targets cheap to reach.
func WithConstrainedLast(vars ...graph.Var) Option {
	return func(cfg *config) { cfg.constrainLast = vars }
}

// WithLogger directs run diagnostics to the given logger. The default
// discards all output.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithValidation cross-checks the adjacency index against the graph before
// the run starts. Useful when a long-lived index is threaded through caller
// mutations.
func WithValidation() Option {
	return func(cfg *config) { cfg.validate = true }
}
