package config

import (
	"time"

	"github.com/faithfularchive/arcon/internal/provider"
)

// PriorityKinds parses the configured priority list into strategy
// kinds. Invalid entries carry a suggestion when one is close.
func (c *Config) PriorityKinds() ([]provider.Kind, error) {
	kinds := make([]provider.Kind, 0, len(c.Wallet.Priority))
	for _, name := range c.Wallet.Priority {
		kind, err := provider.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// ProbeConfig returns the configured availability probe settings.
func (c *Config) ProbeConfig() provider.ProbeConfig {
	probe := provider.DefaultProbeConfig()
	if c.Wallet.ProbeAttempts > 0 {
		probe.Attempts = c.Wallet.ProbeAttempts
	}
	if c.Wallet.ProbeDelayMillis > 0 {
		probe.Delay = time.Duration(c.Wallet.ProbeDelayMillis) * time.Millisecond
	}

	return probe
}

// ConnectTimeout returns the configured connect bound, zero when
// disabled.
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.Wallet.ConnectTimeoutSeconds) * time.Second
}
