// Package session persists the wallet connection preference across
// application restarts. The preference is a {connected, strategy} pair
// written whenever the connection state changes, read once at startup by
// the reconnect flow, and deleted on disconnect or failed reconnect.
package session

import (
	"fmt"

	"github.com/faithfularchive/arcon/internal/provider"
)

// Preference key suffixes; the full key is "<app>" + suffix.
const (
	connectedKeySuffix = "_wallet_connected"
	strategyKeySuffix  = "_wallet_strategy"
)

// connectedValue is the stored marker for an active connection.
const connectedValue = "true"

// Store is the key-value boundary the preference is persisted through.
// Browser hosts back it with local storage; native hosts with a file.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set writes the value for key.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Preference is the persisted connection preference.
type Preference struct {
	Connected bool
	Strategy  provider.Kind
}

// Preferences reads and writes the connection preference through a Store
// under an application-scoped key prefix.
type Preferences struct {
	store Store
	app   string
}

// NewPreferences creates a preference accessor for the given app slug.
func NewPreferences(store Store, app string) *Preferences {
	return &Preferences{store: store, app: app}
}

// Load reads the stored preference. A missing or unparseable entry
// returns nil; stale garbage must not block startup.
func (p *Preferences) Load() (*Preference, error) {
	connected, ok, err := p.store.Get(p.connectedKey())
	if err != nil {
		return nil, fmt.Errorf("reading connection preference: %w", err)
	}
	if !ok || connected != connectedValue {
		return nil, nil
	}

	raw, ok, err := p.store.Get(p.strategyKey())
	if err != nil {
		return nil, fmt.Errorf("reading strategy preference: %w", err)
	}
	if !ok {
		return nil, nil
	}

	kind, err := provider.ParseKind(raw)
	if err != nil {
		// A renamed or removed strategy kind invalidates the preference.
		return nil, nil
	}

	return &Preference{Connected: true, Strategy: kind}, nil
}

// Save writes the preference pair.
func (p *Preferences) Save(pref Preference) error {
	if !pref.Connected {
		return p.Clear()
	}

	if err := p.store.Set(p.connectedKey(), connectedValue); err != nil {
		return fmt.Errorf("writing connection preference: %w", err)
	}
	if err := p.store.Set(p.strategyKey(), pref.Strategy.String()); err != nil {
		return fmt.Errorf("writing strategy preference: %w", err)
	}
	return nil
}

// Clear deletes the stored pair.
func (p *Preferences) Clear() error {
	if err := p.store.Delete(p.connectedKey()); err != nil {
		return fmt.Errorf("clearing connection preference: %w", err)
	}
	if err := p.store.Delete(p.strategyKey()); err != nil {
		return fmt.Errorf("clearing strategy preference: %w", err)
	}
	return nil
}

func (p *Preferences) connectedKey() string {
	return p.app + connectedKeySuffix
}

func (p *Preferences) strategyKey() string {
	return p.app + strategyKeySuffix
}
