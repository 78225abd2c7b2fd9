// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about generator stages and output writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetOutputHooks(&myOutputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRecurrenceStart(ctx, fl, fu)
//	// ... derive element pairs ...
//	observability.Pipeline().OnRecurrenceComplete(ctx, pairs, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generator pipeline.
type PipelineHooks interface {
	// Recurrence events
	OnRecurrenceStart(ctx context.Context, lowerMHz, upperMHz float64)
	OnRecurrenceComplete(ctx context.Context, pairs int, duration time.Duration, err error)

	// Projection events
	OnProjectStart(ctx context.Context, pairs int)
	OnProjectComplete(ctx context.Context, wires int, duration time.Duration, err error)

	// Emit events
	OnEmitStart(ctx context.Context, format string)
	OnEmitComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events when artifacts leave the process.
type OutputHooks interface {
	// OnWrite records a completed or failed write of size bytes to path.
	OnWrite(ctx context.Context, path string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRecurrenceStart(context.Context, float64, float64)                   {}
func (NoopPipelineHooks) OnRecurrenceComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnProjectStart(context.Context, int)                                   {}
func (NoopPipelineHooks) OnProjectComplete(context.Context, int, time.Duration, error)          {}
func (NoopPipelineHooks) OnEmitStart(context.Context, string)                                   {}
func (NoopPipelineHooks) OnEmitComplete(context.Context, string, int, time.Duration, error)     {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnWrite(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	outputHooks   OutputHooks   = NoopOutputHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	outputHooks = NoopOutputHooks{}
}
