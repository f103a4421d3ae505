package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfularchive/arcon/internal/provider"
	"github.com/faithfularchive/arcon/internal/session"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

const testApp = "faithful_archive"

func newTestPreferences(t *testing.T) *session.Preferences {
	t.Helper()

	return session.NewPreferences(session.NewMemoryStore(), testApp)
}

func TestLifecycleRestoreOnStart(t *testing.T) {
	t.Parallel()

	t.Run("no stored preference", func(t *testing.T) {
		t.Parallel()

		m := NewManager(nil)
		lc := NewLifecycle(m, newTestPreferences(t), nil)

		require.NoError(t, lc.RestoreOnStart(context.Background()))
		assert.False(t, m.State().Connected)
	})

	t.Run("reconnects stored strategy", func(t *testing.T) {
		t.Parallel()

		stub := newStubStrategy(provider.Wander)
		m := NewManager(nil)
		m.Register(stub)

		prefs := newTestPreferences(t)
		require.NoError(t, prefs.Save(session.Preference{Connected: true, Strategy: provider.Wander}))

		lc := NewLifecycle(m, prefs, nil)
		require.NoError(t, lc.RestoreOnStart(context.Background()))

		state := m.State()
		assert.True(t, state.Connected)
		assert.Equal(t, provider.Wander, state.ActiveStrategy)
		assert.Equal(t, testAddress, state.Address)
	})

	t.Run("failed reconnect clears preference", func(t *testing.T) {
		t.Parallel()

		stub := newStubStrategy(provider.Wander)
		stub.connectErr = arcerr.ConnectionFailed("extension locked")

		m := NewManager(nil)
		m.Register(stub)

		prefs := newTestPreferences(t)
		require.NoError(t, prefs.Save(session.Preference{Connected: true, Strategy: provider.Wander}))

		lc := NewLifecycle(m, prefs, nil)
		require.Error(t, lc.RestoreOnStart(context.Background()))

		pref, err := prefs.Load()
		require.NoError(t, err)
		assert.Nil(t, pref)
	})

	t.Run("unknown stored strategy clears preference", func(t *testing.T) {
		t.Parallel()

		m := NewManager(nil)

		prefs := newTestPreferences(t)
		require.NoError(t, prefs.Save(session.Preference{Connected: true, Strategy: provider.Beacon}))

		lc := NewLifecycle(m, prefs, nil)
		require.Error(t, lc.RestoreOnStart(context.Background()))

		pref, err := prefs.Load()
		require.NoError(t, err)
		assert.Nil(t, pref)
	})
}

func TestLifecycleWatch(t *testing.T) {
	t.Parallel()

	stub := newStubStrategy(provider.Wander)
	m := NewManager(nil)
	m.Register(stub)
	require.NoError(t, m.SetStrategy(provider.Wander))

	prefs := newTestPreferences(t)
	lc := NewLifecycle(m, prefs, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go lc.Watch(ctx)

	// Give the watcher a moment to subscribe before mutating.
	time.Sleep(20 * time.Millisecond)

	_, err := m.Connect(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		pref, loadErr := prefs.Load()
		return loadErr == nil && pref != nil && pref.Connected && pref.Strategy == provider.Wander
	}, time.Second, 10*time.Millisecond, "connect should persist the preference")

	require.NoError(t, m.Disconnect(context.Background()))

	assert.Eventually(t, func() bool {
		pref, loadErr := prefs.Load()
		return loadErr == nil && pref == nil
	}, time.Second, 10*time.Millisecond, "disconnect should clear the preference")
}
