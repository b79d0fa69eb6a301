// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about reductions and served HTTP requests.
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
//	    observability.SetReducerHooks(&myReducerHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Reducer().OnReduceStart(ctx, base, modulus)
//	// ... reduce ...
//	observability.Reducer().OnReduceComplete(ctx, base, modulus, levels, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Reducer Hooks
// =============================================================================

// ReducerHooks receives events from tower reductions.
type ReducerHooks interface {
	OnReduceStart(ctx context.Context, base, modulus int)
	OnReduceComplete(ctx context.Context, base, modulus, levels int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP form frontend.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopReducerHooks is a no-op implementation of ReducerHooks.
type NoopReducerHooks struct{}

func (NoopReducerHooks) OnReduceStart(context.Context, int, int) {}
func (NoopReducerHooks) OnReduceComplete(context.Context, int, int, int, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	reducerHooks ReducerHooks = NoopReducerHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetReducerHooks registers custom reducer hooks.
// This should be called once at application startup before any reduction.
func SetReducerHooks(h ReducerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reducerHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Reducer returns the registered reducer hooks.
func Reducer() ReducerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reducerHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reducerHooks = NoopReducerHooks{}
	httpHooks = NoopHTTPHooks{}
}
