// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about simulation runs, graph file I/O, and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The force engine itself never calls hooks; a single Calculate step is too
// fine-grained. The settle runner in pkg/pipeline reports per-run and sampled
// per-step events instead.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSimulationHooks(&mySimulationHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Simulation().OnSimulationStart(ctx, runID, 2, nodes, edges)
//	// ... run steps ...
//	observability.Simulation().OnSimulationComplete(ctx, runID, steps, energy, converged, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Simulation Hooks
// =============================================================================

// SimulationHooks receives events from settle runs.
type SimulationHooks interface {
	// OnSimulationStart records the start of a run over a graph.
	OnSimulationStart(ctx context.Context, runID string, dimensions, nodeCount, edgeCount int)

	// OnSimulationStep records a sampled step and the energy after it.
	OnSimulationStep(ctx context.Context, runID string, step int, energy float64)

	// OnSimulationComplete records the end of a run. err is non-nil only when
	// the run was aborted; hitting the step limit is reported via converged.
	OnSimulationComplete(ctx context.Context, runID string, steps int, energy float64, converged bool, duration time.Duration, err error)
}

// =============================================================================
// Graph I/O Hooks
// =============================================================================

// GraphHooks receives events from graph file reading and layout writing.
type GraphHooks interface {
	// OnGraphLoad records a graph file read.
	OnGraphLoad(ctx context.Context, path string, nodeCount, edgeCount int, duration time.Duration, err error)

	// OnLayoutWrite records a layout file write.
	OnLayoutWrite(ctx context.Context, path string, nodeCount int, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from node-link rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, nodeCount int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSimulationHooks is a no-op implementation of SimulationHooks.
type NoopSimulationHooks struct{}

func (NoopSimulationHooks) OnSimulationStart(context.Context, string, int, int, int)  {}
func (NoopSimulationHooks) OnSimulationStep(context.Context, string, int, float64) {}
func (NoopSimulationHooks) OnSimulationComplete(context.Context, string, int, float64, bool, time.Duration, error) {
}

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnGraphLoad(context.Context, string, int, int, time.Duration, error) {}
func (NoopGraphHooks) OnLayoutWrite(context.Context, string, int, error)                  {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	simulationHooks SimulationHooks = NoopSimulationHooks{}
	graphHooks      GraphHooks      = NoopGraphHooks{}
	renderHooks     RenderHooks     = NoopRenderHooks{}
	hooksMu         sync.RWMutex
)

// SetSimulationHooks registers custom simulation hooks.
// This should be called once at application startup before any runs.
func SetSimulationHooks(h SimulationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		simulationHooks = h
	}
}

// SetGraphHooks registers custom graph I/O hooks.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Simulation returns the registered simulation hooks.
func Simulation() SimulationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return simulationHooks
}

// Graph returns the registered graph I/O hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	simulationHooks = NoopSimulationHooks{}
	graphHooks = NoopGraphHooks{}
	renderHooks = NoopRenderHooks{}
}
