package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

func TestRunConnect(t *testing.T) {
	t.Run("auto-selects and persists", func(t *testing.T) {
		connectStrategy = ""

		env := newTestEnv(t, newFakeStrategy(provider.Wander))
		cmd := env.newTestCommand()

		require.NoError(t, runConnect(cmd, nil))

		var result connectResult
		require.NoError(t, json.Unmarshal(env.buf.Bytes(), &result))
		assert.Equal(t, "wander", result.Strategy)
		assert.Equal(t, testAddress, result.Address)

		pref, err := env.cc.Prefs.Load()
		require.NoError(t, err)
		require.NotNil(t, pref)
		assert.True(t, pref.Connected)
		assert.Equal(t, provider.Wander, pref.Strategy)
	})

	t.Run("explicit strategy flag", func(t *testing.T) {
		connectStrategy = "beacon"
		t.Cleanup(func() { connectStrategy = "" })

		env := newTestEnv(t, newFakeStrategy(provider.Wander), newFakeStrategy(provider.Beacon))
		cmd := env.newTestCommand()

		require.NoError(t, runConnect(cmd, nil))

		var result connectResult
		require.NoError(t, json.Unmarshal(env.buf.Bytes(), &result))
		assert.Equal(t, "beacon", result.Strategy)
	})

	t.Run("invalid strategy flag", func(t *testing.T) {
		connectStrategy = "wender"
		t.Cleanup(func() { connectStrategy = "" })

		env := newTestEnv(t, newFakeStrategy(provider.Wander))
		cmd := env.newTestCommand()

		err := runConnect(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wander")
	})

	t.Run("denied connect surfaces taxonomy error", func(t *testing.T) {
		connectStrategy = ""

		denied := newFakeStrategy(provider.Wander)
		denied.connectErr = errFakeDenied

		env := newTestEnv(t, denied)
		cmd := env.newTestCommand()

		err := runConnect(cmd, nil)
		require.Error(t, err)
		assert.Equal(t, arcerr.KindUserDenied, arcerr.KindOf(err))

		pref, loadErr := env.cc.Prefs.Load()
		require.NoError(t, loadErr)
		assert.Nil(t, pref, "failed connect must not persist a preference")
	})
}

func TestRunDisconnect(t *testing.T) {
	connectStrategy = ""

	env := newTestEnv(t, newFakeStrategy(provider.Wander))
	cmd := env.newTestCommand()

	require.NoError(t, runConnect(cmd, nil))
	env.buf.Reset()

	require.NoError(t, runDisconnect(cmd, nil))

	pref, err := env.cc.Prefs.Load()
	require.NoError(t, err)
	assert.Nil(t, pref)
	assert.False(t, env.cc.Manager.State().Connected)
}
