// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
// For production observability, consider integrating with Prometheus or similar.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	// Provider invocation metrics
	providerCallsTotal  atomic.Int64
	providerErrorsTotal atomic.Int64
	providerLatencyNano atomic.Int64

	// Session operation metrics
	connectsTotal  atomic.Int64
	connectsFailed atomic.Int64
	signsTotal     atomic.Int64
	signsFailed    atomic.Int64

	// Discovery metrics
	probesTotal     atomic.Int64
	probesAvailable atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordProviderCall records a provider invocation with its duration
// and success status.
func (m *Metrics) RecordProviderCall(duration time.Duration, err error) {
	m.providerCallsTotal.Add(1)
	m.providerLatencyNano.Add(duration.Nanoseconds())

	if err != nil {
		m.providerErrorsTotal.Add(1)
	}
}

// RecordConnect records a connect attempt.
func (m *Metrics) RecordConnect(err error) {
	m.connectsTotal.Add(1)
	if err != nil {
		m.connectsFailed.Add(1)
	}
}

// RecordSign records a signing attempt.
func (m *Metrics) RecordSign(err error) {
	m.signsTotal.Add(1)
	if err != nil {
		m.signsFailed.Add(1)
	}
}

// RecordProbe records one availability probe and its outcome.
func (m *Metrics) RecordProbe(available bool) {
	m.probesTotal.Add(1)
	if available {
		m.probesAvailable.Add(1)
	}
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	ProviderCallsTotal  int64
	ProviderErrorsTotal int64
	ProviderLatencyNano int64
	ConnectsTotal       int64
	ConnectsFailed      int64
	SignsTotal          int64
	SignsFailed         int64
	ProbesTotal         int64
	ProbesAvailable     int64
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		ProviderCallsTotal:  m.providerCallsTotal.Load(),
		ProviderErrorsTotal: m.providerErrorsTotal.Load(),
		ProviderLatencyNano: m.providerLatencyNano.Load(),
		ConnectsTotal:       m.connectsTotal.Load(),
		ConnectsFailed:      m.connectsFailed.Load(),
		SignsTotal:          m.signsTotal.Load(),
		SignsFailed:         m.signsFailed.Load(),
		ProbesTotal:         m.probesTotal.Load(),
		ProbesAvailable:     m.probesAvailable.Load(),
	}
}

// ProviderLatencyAvgMs returns the average provider call latency in
// milliseconds. Returns 0 if no calls have been made.
func (m *Metrics) ProviderLatencyAvgMs() float64 {
	calls := m.providerCallsTotal.Load()
	if calls == 0 {
		return 0
	}
	nanos := m.providerLatencyNano.Load()
	return float64(nanos) / float64(calls) / 1e6
}

// AvailabilityRate returns the share of probes that found a provider
// available, as a percentage (0-100). Returns 0 before any probes.
func (m *Metrics) AvailabilityRate() float64 {
	total := m.probesTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.probesAvailable.Load()) / float64(total) * 100
}

// Reset zeroes all counters. Intended for tests.
func (m *Metrics) Reset() {
	m.providerCallsTotal.Store(0)
	m.providerErrorsTotal.Store(0)
	m.providerLatencyNano.Store(0)
	m.connectsTotal.Store(0)
	m.connectsFailed.Store(0)
	m.signsTotal.Store(0)
	m.signsFailed.Store(0)
	m.probesTotal.Store(0)
	m.probesAvailable.Store(0)
}
