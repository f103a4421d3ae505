package wallet

import (
	"context"

	"github.com/faithfularchive/arcon/internal/session"
)

// Lifecycle ties a manager to the persisted connection preference:
// it restores the previous session on startup and keeps the stored
// preference in sync with state changes.
type Lifecycle struct {
	manager *Manager
	prefs   *session.Preferences
	logger  LogWriter
}

// NewLifecycle creates a lifecycle binding.
func NewLifecycle(manager *Manager, prefs *session.Preferences, logger LogWriter) *Lifecycle {
	if logger == nil {
		logger = nopLogger{}
	}

	return &Lifecycle{
		manager: manager,
		prefs:   prefs,
		logger:  logger,
	}
}

// RestoreOnStart reconnects using the persisted preference, if any.
// A missing or unreadable preference is not an error. When the stored
// strategy cannot be selected or the reconnect fails, the stale
// preference is cleared so the next start does not retry it, and the
// failure is returned for logging. There is no automatic retry.
func (l *Lifecycle) RestoreOnStart(ctx context.Context) error {
	if l.manager.State().Connected {
		return nil
	}

	pref, err := l.prefs.Load()
	if err != nil {
		l.logger.Error("loading connection preference: %v", err)
		return nil
	}

	if pref == nil || !pref.Connected {
		return nil
	}

	l.logger.Debug("restoring previous session via %s", pref.Strategy)

	if err := l.manager.SetStrategy(pref.Strategy); err != nil {
		l.clearPreference()
		return err
	}

	if _, err := l.manager.Connect(ctx); err != nil {
		l.clearPreference()
		return err
	}

	return nil
}

// Watch keeps the persisted preference in sync with the session:
// connects are saved, disconnects clear the record. It blocks until
// the context is canceled, so callers run it in its own goroutine.
func (l *Lifecycle) Watch(ctx context.Context) {
	states, cancel := l.manager.Subscribe()
	defer cancel()

	var lastConnected bool
	var lastStrategy = l.manager.State().ActiveStrategy

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}

			if state.Connected == lastConnected && state.ActiveStrategy == lastStrategy {
				continue
			}
			lastConnected = state.Connected
			lastStrategy = state.ActiveStrategy

			l.persist(state)
		}
	}
}

// persist writes or clears the stored preference for one snapshot.
func (l *Lifecycle) persist(state SessionState) {
	if state.Connected && state.ActiveStrategy != "" {
		err := l.prefs.Save(session.Preference{
			Connected: true,
			Strategy:  state.ActiveStrategy,
		})
		if err != nil {
			l.logger.Error("saving connection preference: %v", err)
		}

		return
	}

	l.clearPreference()
}

func (l *Lifecycle) clearPreference() {
	if err := l.prefs.Clear(); err != nil {
		l.logger.Error("clearing connection preference: %v", err)
	}
}
