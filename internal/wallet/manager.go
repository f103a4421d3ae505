package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/faithfularchive/arcon/internal/metrics"
	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// DefaultPermissions are requested on connect when none are configured.
var DefaultPermissions = []string{
	"ACCESS_ADDRESS",
	"SIGN_TRANSACTION",
	"ACCESS_PUBLIC_KEY",
}

// subscriberBuffer bounds each observer channel. Slow observers drop
// intermediate snapshots rather than block the manager.
const subscriberBuffer = 16

// Config holds manager construction options.
type Config struct {
	// Priority is the auto-selection order. Defaults to
	// provider.DefaultPriority when empty.
	Priority []provider.Kind

	// Permissions requested from strategies on connect. Defaults to
	// DefaultPermissions when empty.
	Permissions []string

	// Probe controls availability probing during discovery.
	Probe provider.ProbeConfig

	// Logger receives debug and error output. Optional.
	Logger LogWriter
}

// Manager owns the wallet session. All strategy selection and
// connection mutation flows through it, so the rest of the application
// only ever reads consistent snapshots.
type Manager struct {
	registry    *provider.Registry
	priority    []provider.Kind
	permissions []string
	probe       provider.ProbeConfig
	logger      LogWriter

	// opMu serializes connect, disconnect and strategy selection.
	// Reads and sign delegation do not take it.
	opMu sync.Mutex

	stateMu sync.RWMutex
	state   SessionState

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan SessionState
}

// NewManager creates a manager with an empty registry.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	priority := cfg.Priority
	if len(priority) == 0 {
		priority = provider.DefaultPriority()
	}

	permissions := cfg.Permissions
	if len(permissions) == 0 {
		permissions = DefaultPermissions
	}

	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	probe := cfg.Probe
	if probe.Attempts <= 0 {
		probe = provider.DefaultProbeConfig()
	}

	return &Manager{
		registry:    provider.NewRegistry(),
		priority:    append([]provider.Kind(nil), priority...),
		permissions: append([]string(nil), permissions...),
		probe:       probe,
		logger:      logger,
		subs:        make(map[int]chan SessionState),
	}
}

// Register adds a strategy to the manager's registry. Registering the
// same kind twice replaces the earlier entry.
func (m *Manager) Register(s provider.Strategy) {
	m.registry.Register(s)
}

// State returns a snapshot of the current session state.
func (m *Manager) State() SessionState {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	return m.state.clone()
}

// ActiveStrategy returns the selected strategy kind, if any.
func (m *Manager) ActiveStrategy() (provider.Kind, bool) {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	return m.state.ActiveStrategy, m.state.ActiveStrategy != ""
}

// Capabilities returns the capability set of the selected strategy.
// The zero value is returned when no strategy is selected.
func (m *Manager) Capabilities() provider.Capabilities {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	return m.state.Capabilities
}

// Subscribe registers an observer for state snapshots. Every mutation
// publishes a snapshot; slow observers miss intermediate ones. The
// returned cancel func releases the subscription.
func (m *Manager) Subscribe() (<-chan SessionState, func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextID
	m.nextID++

	ch := make(chan SessionState, subscriberBuffer)
	m.subs[id] = ch

	return ch, func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()

		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
}

// mutate applies fn to the state under the write lock and publishes the
// resulting snapshot to all subscribers.
func (m *Manager) mutate(fn func(*SessionState)) {
	m.stateMu.Lock()
	fn(&m.state)
	snapshot := m.state.clone()
	m.stateMu.Unlock()

	m.publish(snapshot)
}

func (m *Manager) publish(snapshot SessionState) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for _, ch := range m.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// SetStrategy selects the strategy for subsequent operations. It does
// not connect. Selecting while connected is rejected; disconnect first.
func (m *Manager) SetStrategy(kind provider.Kind) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	return m.setStrategyLocked(kind)
}

func (m *Manager) setStrategyLocked(kind provider.Kind) error {
	s, ok := m.registry.Strategy(kind)
	if !ok {
		return arcerr.ConnectionFailed("strategy not registered: " + kind.String())
	}

	m.stateMu.RLock()
	connected := m.state.Connected
	m.stateMu.RUnlock()

	if connected {
		return arcerr.ConnectionFailed("disconnect before switching strategies")
	}

	m.mutate(func(st *SessionState) {
		st.ActiveStrategy = kind
		st.Capabilities = s.Capabilities()
		st.Err = nil
	})

	m.logger.Debug("strategy selected: %s", kind)

	return nil
}

// active returns the currently selected strategy.
func (m *Manager) active() (provider.Strategy, error) {
	m.stateMu.RLock()
	kind := m.state.ActiveStrategy
	m.stateMu.RUnlock()

	if kind == "" {
		return nil, arcerr.New(arcerr.KindNotInstalled, "no wallet strategy selected")
	}

	s, ok := m.registry.Strategy(kind)
	if !ok {
		return nil, arcerr.ConnectionFailed("strategy not registered: " + kind.String())
	}

	return s, nil
}

// Connect connects through the selected strategy. The session enters
// the connecting state for the duration of the call and any previous
// error is cleared up front. On success the returned address, the
// requested permissions and the connected flag are recorded; on failure
// the normalized error is recorded and returned.
func (m *Manager) Connect(ctx context.Context) (string, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	s, err := m.active()
	if err != nil {
		m.mutate(func(st *SessionState) {
			st.Err = arcerr.Classify(err)
		})

		return "", err
	}

	m.mutate(func(st *SessionState) {
		st.Connecting = true
		st.Err = nil
	})

	address, err := s.Connect(ctx, m.permissions)
	metrics.Global.RecordConnect(err)
	if err != nil {
		werr := arcerr.Classify(err)
		m.mutate(func(st *SessionState) {
			st.Connecting = false
			st.Connected = false
			st.Address = ""
			st.Permissions = nil
			st.Err = werr
		})
		m.logger.Error("connect via %s failed: %v", s.Kind(), werr)

		return "", werr
	}

	m.mutate(func(st *SessionState) {
		st.Connecting = false
		st.Connected = true
		st.Address = address
		st.Permissions = append([]string(nil), m.permissions...)
		st.Err = nil
	})

	m.logger.Debug("connected via %s: %s", s.Kind(), FormatAddress(address))

	return address, nil
}

// ConnectWithTimeout connects with an upper bound on how long the
// caller waits. When the timeout fires the session leaves the
// connecting state and records a connection failure, but the underlying
// attempt keeps running; if it later resolves, its outcome overwrites
// the timeout record.
func (m *Manager) ConnectWithTimeout(ctx context.Context, timeout time.Duration) (string, error) {
	type outcome struct {
		address string
		err     error
	}

	done := make(chan outcome, 1)
	go func() {
		address, err := m.Connect(ctx)
		done <- outcome{address: address, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.address, out.err
	case <-timer.C:
		werr := arcerr.ConnectionFailed("timeout")
		m.mutate(func(st *SessionState) {
			st.Connecting = false
			st.Err = werr
		})
		m.logger.Error("connect timed out after %s", timeout)

		return "", werr
	}
}

// Disconnect tears down the session. Disconnecting when already
// disconnected succeeds and only clears any stale error. On a provider
// failure the classified error is recorded and returned; the rest of
// the session state keeps its connected values so the caller can see
// what the provider still believes.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.stateMu.RLock()
	connected := m.state.Connected
	m.stateMu.RUnlock()

	if !connected {
		m.mutate(func(st *SessionState) {
			st.Err = nil
		})

		return nil
	}

	s, err := m.active()
	if err == nil {
		err = s.Disconnect(ctx)
	}

	if err != nil {
		werr := arcerr.Classify(err)
		m.logger.Error("disconnect failed: %v", werr)
		m.mutate(func(st *SessionState) {
			st.Err = werr
		})

		return werr
	}

	m.mutate(func(st *SessionState) {
		st.Connected = false
		st.Connecting = false
		st.Address = ""
		st.Permissions = nil
		st.Err = nil
	})

	m.logger.Debug("disconnected")

	return nil
}

// SignTransaction signs through the selected strategy. Failures are
// normalized, mirrored into the session error and returned.
func (m *Manager) SignTransaction(ctx context.Context, transaction map[string]any) (map[string]any, error) {
	s, err := m.active()
	if err != nil {
		return nil, err
	}

	signed, err := s.SignTransaction(ctx, transaction)
	metrics.Global.RecordSign(err)
	if err != nil {
		werr := arcerr.Classify(err)
		m.mutate(func(st *SessionState) {
			st.Err = werr
		})

		return nil, werr
	}

	return signed, nil
}

// CheckConnection asks the selected strategy whether the session is
// still live. Without a selected strategy it reports false.
func (m *Manager) CheckConnection(ctx context.Context) bool {
	s, err := m.active()
	if err != nil {
		return false
	}

	return s.CheckConnection(ctx)
}
