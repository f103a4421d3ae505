package wallet

import (
	"context"
	"sync"

	"github.com/faithfularchive/arcon/internal/metrics"
	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// DefaultDiscoveryWorkers is the default number of concurrent
// availability probes.
const DefaultDiscoveryWorkers = 3

// probeJob represents a single strategy availability probe.
type probeJob struct {
	strategy provider.Strategy
	index    int // Original index for result ordering
}

// probeResult represents the outcome of a single probe.
type probeResult struct {
	kind      provider.Kind
	available bool
	index     int
}

// DiscoverAvailable probes every registered strategy concurrently and
// records which ones are usable. Probe errors are logged and the
// strategy treated as unavailable; discovery itself never fails. The
// result preserves registration order.
func (m *Manager) DiscoverAvailable(ctx context.Context) []provider.Kind {
	kinds := m.registry.Kinds()

	jobs := make(chan probeJob, len(kinds))
	results := make(chan probeResult, len(kinds))

	workers := DefaultDiscoveryWorkers
	if len(kinds) < workers {
		workers = len(kinds)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go m.probeWorker(ctx, jobs, results, &wg)
	}

	for i, kind := range kinds {
		s, _ := m.registry.Strategy(kind)
		jobs <- probeJob{strategy: s, index: i}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]probeResult, 0, len(kinds))
	for result := range results {
		collected = append(collected, result)
	}

	sortResultsByIndex(collected)

	available := make([]provider.Kind, 0, len(collected))
	for _, res := range collected {
		if res.available {
			available = append(available, res.kind)
		}
	}

	m.mutate(func(st *SessionState) {
		st.AvailableStrategies = append([]provider.Kind(nil), available...)
		st.Available = len(available) > 0
	})

	m.logger.Debug("discovery found %d of %d strategies available", len(available), len(kinds))

	return available
}

// probeWorker processes probe jobs from the queue.
func (m *Manager) probeWorker(
	ctx context.Context,
	jobs <-chan probeJob,
	results chan<- probeResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for job := range jobs {
		kind := job.strategy.Kind()

		if ctx.Err() != nil {
			results <- probeResult{kind: kind, index: job.index}
			continue
		}

		available, err := provider.Probe(ctx, job.strategy, m.probe)
		if err != nil {
			m.logger.Error("probe %s: %v", kind, err)
			available = false
		}
		metrics.Global.RecordProbe(available)

		results <- probeResult{kind: kind, available: available, index: job.index}
	}
}

// sortResultsByIndex sorts results by their original index.
func sortResultsByIndex(results []probeResult) {
	// Simple insertion sort since the list is small
	for i := 1; i < len(results); i++ {
		key := results[i]
		j := i - 1
		for j >= 0 && results[j].index > key.index {
			results[j+1] = results[j]
			j--
		}
		results[j+1] = key
	}
}

// AutoSelect discovers available strategies and selects the best one
// according to the configured priority order. Available strategies
// outside the priority list are used as a fallback in discovery order.
func (m *Manager) AutoSelect(ctx context.Context) (provider.Kind, error) {
	available := m.DiscoverAvailable(ctx)
	if len(available) == 0 {
		werr := arcerr.New(arcerr.KindNotInstalled, "no wallet strategies available")
		m.mutate(func(st *SessionState) {
			st.Err = werr
		})

		return "", werr
	}

	availableSet := make(map[provider.Kind]bool, len(available))
	for _, kind := range available {
		availableSet[kind] = true
	}

	choice := available[0]
	for _, kind := range m.priority {
		if availableSet[kind] {
			choice = kind
			break
		}
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.setStrategyLocked(choice); err != nil {
		return "", err
	}

	return choice, nil
}
