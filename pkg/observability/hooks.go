// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about elimination runs and ordering
// computation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by the application, not by libraries)
//   - Keeps the inference core dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEliminationHooks(&myEliminationHooks{})
//	    // ... run estimator
//	}
//
// The elimination engine calls hooks to emit events:
//
//	observability.Elimination().OnStepStart(v, factorCount)
//	// ... eliminate v ...
//	observability.Elimination().OnStepComplete(v, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Elimination Hooks
// =============================================================================

// EliminationHooks receives events from elimination runs.
type EliminationHooks interface {
	// Run events
	OnRunStart(numVars, numFactors int)
	OnRunComplete(conditionals int, duration time.Duration, err error)

	// Per-variable step events
	OnStepStart(variable int, factorCount int)
	OnStepComplete(variable int, duration time.Duration, err error)
}

// =============================================================================
// Ordering Hooks
// =============================================================================

// OrderingHooks receives events from ordering-oracle invocations.
type OrderingHooks interface {
	// OnOrderingStart records the start of an ordering computation.
	OnOrderingStart(numVars, constrained int)

	// OnOrderingComplete records a finished ordering computation.
	OnOrderingComplete(numVars int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEliminationHooks is a no-op implementation of EliminationHooks.
type NoopEliminationHooks struct{}

func (NoopEliminationHooks) OnRunStart(int, int)                      {}
func (NoopEliminationHooks) OnRunComplete(int, time.Duration, error)  {}
func (NoopEliminationHooks) OnStepStart(int, int)                     {}
func (NoopEliminationHooks) OnStepComplete(int, time.Duration, error) {}

// NoopOrderingHooks is a no-op implementation of OrderingHooks.
type NoopOrderingHooks struct{}

func (NoopOrderingHooks) OnOrderingStart(int, int)                     {}
func (NoopOrderingHooks) OnOrderingComplete(int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	eliminationHooks EliminationHooks = NoopEliminationHooks{}
	orderingHooks    OrderingHooks    = NoopOrderingHooks{}
	hooksMu          sync.RWMutex
)

// SetEliminationHooks registers custom elimination hooks.
// This should be called once at application startup before any elimination runs.
func SetEliminationHooks(h EliminationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		eliminationHooks = h
	}
}

// SetOrderingHooks registers custom ordering hooks.
// This should be called once at application startup before any ordering computation.
func SetOrderingHooks(h OrderingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		orderingHooks = h
	}
}

// Elimination returns the registered elimination hooks.
func Elimination() EliminationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return eliminationHooks
}

// Ordering returns the registered ordering hooks.
func Ordering() OrderingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return orderingHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	eliminationHooks = NoopEliminationHooks{}
	orderingHooks = NoopOrderingHooks{}
}
