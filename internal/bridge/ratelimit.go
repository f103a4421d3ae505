package bridge

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/faithfularchive/arcon/internal/metrics"
)

// RateLimited wraps an Invoker with per-method token bucket rate limiting,
// keeping a misbehaving UI from hammering a provider with repeated calls.
type RateLimited struct {
	inner      Invoker
	mu         sync.RWMutex
	limiters   map[string]*rate.Limiter
	rateLimit  rate.Limit
	burstLimit int
}

// NewRateLimited wraps inner with the specified per-method rate and burst.
func NewRateLimited(inner Invoker, ratePerSecond float64, burst int) *RateLimited {
	return &RateLimited{
		inner:      inner,
		limiters:   make(map[string]*rate.Limiter),
		rateLimit:  rate.Limit(ratePerSecond),
		burstLimit: burst,
	}
}

// DefaultRateLimited wraps inner with default settings: 5 calls/second,
// burst of 10.
func DefaultRateLimited(inner Invoker) *RateLimited {
	return NewRateLimited(inner, 5, 10)
}

// Available delegates the probe without limiting; probes are cheap and the
// discovery path must not stall behind provider call budgets.
func (r *RateLimited) Available(ctx context.Context) (bool, error) {
	return r.inner.Available(ctx)
}

// Invoke waits for the method's rate budget before delegating. Call
// counts and latency are recorded for every delegated invocation.
func (r *RateLimited) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	if err := r.getLimiter(method).Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := r.inner.Invoke(ctx, method, args...)
	metrics.Global.RecordProviderCall(time.Since(start), err)

	return result, err
}

// Close delegates cleanup when the wrapped invoker supports it.
func (r *RateLimited) Close() error {
	if c, ok := r.inner.(Closer); ok {
		return c.Close()
	}
	return nil
}

// getLimiter returns the limiter for the given method, creating one if needed.
func (r *RateLimited) getLimiter(method string) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.limiters[method]
	r.mu.RUnlock()

	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = r.limiters[method]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(r.rateLimit, r.burstLimit)
	r.limiters[method] = limiter
	return limiter
}

// Compile-time interface check
var _ Invoker = (*RateLimited)(nil)
