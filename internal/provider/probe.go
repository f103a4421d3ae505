package provider

import (
	"context"
	"time"
)

// ProbeConfig configures availability probing.
type ProbeConfig struct {
	Attempts int           // Total probe attempts (including initial)
	Delay    time.Duration // Wait before the first and between attempts
}

// DefaultProbeConfig returns the default probe behavior: an initial 100ms
// grace period for late script injection, then one retry.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		Attempts: 2,
		Delay:    100 * time.Millisecond,
	}
}

// Probe checks a strategy's availability, tolerating providers that become
// reachable slightly after startup. A negative result is retried up to the
// configured attempts; a probe error stops retrying and is returned so the
// caller can decide whether to swallow it.
func Probe(ctx context.Context, s Strategy, cfg ProbeConfig) (bool, error) {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}

	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		if cfg.Delay > 0 {
			timer := time.NewTimer(cfg.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return false, ctx.Err()
			case <-timer.C:
			}
		}

		available, err := s.IsAvailable(ctx)
		if err != nil {
			return false, err
		}
		if available {
			return true, nil
		}
	}

	return false, nil
}
