package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome           = "ARCON_HOME"
	EnvAppName        = "ARCON_APP_NAME"
	EnvBrokerURL      = "ARCON_BROKER_URL"
	EnvGatewayHost    = "ARCON_GATEWAY_HOST"
	EnvPriority       = "ARCON_PRIORITY"
	EnvConnectTimeout = "ARCON_CONNECT_TIMEOUT"
	EnvLogLevel       = "ARCON_LOG_LEVEL"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvAppName); v != "" {
		cfg.App.Name = v
	}

	if v := os.Getenv(EnvBrokerURL); v != "" {
		cfg.Beacon.BrokerURL = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvGatewayHost); v != "" {
		cfg.Beacon.GatewayHost = strings.TrimSpace(v)
	}

	// ARCON_PRIORITY is a comma-separated strategy list
	if v := os.Getenv(EnvPriority); v != "" {
		cfg.Wallet.Priority = splitList(v)
	}

	// ARCON_CONNECT_TIMEOUT is in seconds
	if v := os.Getenv(EnvConnectTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil && timeout > 0 {
			cfg.Wallet.ConnectTimeoutSeconds = timeout
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}

// splitList splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
