package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "faithful_archive", cfg.App.Slug)
	assert.Equal(t, DefaultPriority, cfg.Wallet.Priority)
	assert.Equal(t, DefaultPermissions, cfg.Wallet.Permissions)
	assert.Equal(t, DefaultBrokerURL, cfg.Beacon.BrokerURL)
	assert.Equal(t, DefaultGatewayHost, cfg.Beacon.GatewayHost)
	assert.Equal(t, 443, cfg.Beacon.GatewayPort)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := Path(dir)

	cfg := Defaults()
	cfg.App.Name = "Test App"
	cfg.Wallet.ConnectTimeoutSeconds = 5
	cfg.Beacon.BrokerURL = "wss://broker.example.com:9000"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	partial := []byte("app:\n  name: Partial\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, partial, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Partial", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultPriority, cfg.Wallet.Priority)
	assert.Equal(t, DefaultBrokerURL, cfg.Beacon.BrokerURL)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestPreferencesPath(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Home = "/tmp/arcon-test"
	assert.Equal(t, filepath.Join("/tmp/arcon-test", "preferences.json"), cfg.PreferencesPath())

	cfg.Storage.PreferencesFile = "/var/lib/arcon/prefs.json"
	assert.Equal(t, "/var/lib/arcon/prefs.json", cfg.PreferencesPath())
}
