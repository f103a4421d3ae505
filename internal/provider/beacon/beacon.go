// Package beacon adapts the Beacon wallet, an iOS-based agent-first
// wallet for AO reached through a remote broker bridge. Unlike extension
// wallets, the provider keeps no queryable session on this side, so the
// strategy carries its own connected/address bookkeeping.
package beacon

import (
	"context"
	"sync"

	"github.com/faithfularchive/arcon/internal/bridge"
	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// Provider method names on the broker client.
const (
	methodConnect    = "connect"
	methodDisconnect = "disconnect"
	methodSign       = "sign"
)

// protocolVersion is the aosync protocol revision this adapter speaks.
const protocolVersion = 5

// Options configures the broker handshake.
type Options struct {
	AppName         string
	AppLogo         string
	GatewayHost     string
	GatewayPort     int
	GatewayProtocol string
	BrokerURL       string
}

// DefaultOptions returns the stock Beacon broker configuration.
func DefaultOptions() Options {
	return Options{
		AppName:         "arcon",
		GatewayHost:     "arweave.net",
		GatewayPort:     443,
		GatewayProtocol: "https",
		BrokerURL:       "wss://aosync-broker-eu.beaconwallet.dev:8081",
	}
}

// connectPayload is the handshake body sent to the broker.
type connectPayload struct {
	Permissions []string       `json:"permissions"`
	AppInfo     appInfo        `json:"appInfo"`
	Gateway     gatewayInfo    `json:"gateway"`
	BrokerURL   string         `json:"brokerUrl"`
	Options     connectOptions `json:"options"`
}

type appInfo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type gatewayInfo struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
}

type connectOptions struct {
	ProtocolVersion int `json:"protocolVersion"`
}

// Strategy adapts the Beacon broker bridge.
type Strategy struct {
	invoker bridge.Invoker
	opts    Options

	mu          sync.Mutex
	connected   bool
	address     string
	permissions []string
}

// New creates a Beacon strategy over the given broker bridge.
func New(invoker bridge.Invoker, opts Options) *Strategy {
	return &Strategy{invoker: invoker, opts: opts}
}

// Kind returns the provider family.
func (s *Strategy) Kind() provider.Kind {
	return provider.Beacon
}

// Capabilities returns the Beacon family capability set. AO-focused
// wallets support batch operations but not wallet-side encryption.
func (s *Strategy) Capabilities() provider.Capabilities {
	return provider.Capabilities{
		CanSign:                   true,
		CanEncrypt:                false,
		CanDecrypt:                false,
		SupportsBatchSigning:      true,
		SupportsPermissions:       true,
		SupportsMultipleAddresses: false,
	}
}

// IsAvailable reports whether the broker bridge is reachable. Brokers can
// come up slightly after the application; the manager's probe retry covers
// that window.
func (s *Strategy) IsAvailable(ctx context.Context) (bool, error) {
	available, err := s.invoker.Available(ctx)
	if err != nil {
		return false, arcerr.Wrap(err, "probing beacon bridge")
	}
	return available, nil
}

// Connect performs the broker handshake and returns the granted address.
func (s *Strategy) Connect(ctx context.Context, permissions []string) (string, error) {
	payload := connectPayload{
		Permissions: permissions,
		AppInfo:     appInfo{Name: s.opts.AppName, Logo: s.opts.AppLogo},
		Gateway: gatewayInfo{
			Host:     s.opts.GatewayHost,
			Port:     s.opts.GatewayPort,
			Protocol: s.opts.GatewayProtocol,
		},
		BrokerURL: s.opts.BrokerURL,
		Options:   connectOptions{ProtocolVersion: protocolVersion},
	}

	result, err := s.invoker.Invoke(ctx, methodConnect, payload)
	if err != nil {
		return "", arcerr.Classify(err)
	}

	address, err := decodeConnectResult(result)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.connected = true
	s.address = address
	s.permissions = append([]string(nil), permissions...)
	s.mu.Unlock()

	return address, nil
}

// decodeConnectResult accepts either a bare address string or an object
// carrying an address field.
func decodeConnectResult(result any) (string, error) {
	if address, err := bridge.DecodeString(result); err == nil {
		return address, nil
	}

	obj, err := bridge.DecodeMap(result)
	if err != nil {
		return "", arcerr.ConnectionFailed("invalid connection response")
	}

	address, err := bridge.MapString(obj, "address")
	if err != nil {
		return "", arcerr.ConnectionFailed("no address in connection response")
	}
	return address, nil
}

// Disconnect ends the broker session. Disconnecting when never connected
// succeeds trivially.
func (s *Strategy) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	connected := s.connected
	s.mu.Unlock()

	if !connected {
		return nil
	}

	if _, err := s.invoker.Invoke(ctx, methodDisconnect); err != nil {
		return arcerr.Classify(err)
	}

	s.mu.Lock()
	s.connected = false
	s.address = ""
	s.permissions = nil
	s.mu.Unlock()
	return nil
}

// ActiveAddress returns the address recorded at handshake time.
func (s *Strategy) ActiveAddress(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected || s.address == "" {
		return "", arcerr.ConnectionFailed("beacon not connected")
	}
	return s.address, nil
}

// Permissions returns the permissions requested at handshake time. The
// broker has no grant query, so the requested set is the best available
// record.
func (s *Strategy) Permissions(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return nil, arcerr.ConnectionFailed("beacon not connected")
	}
	return append([]string(nil), s.permissions...), nil
}

// SignTransaction submits transaction data over the broker for signing.
func (s *Strategy) SignTransaction(ctx context.Context, tx map[string]any) (map[string]any, error) {
	s.mu.Lock()
	connected := s.connected
	s.mu.Unlock()

	if !connected {
		return nil, arcerr.SigningFailed("beacon not connected")
	}

	result, err := s.invoker.Invoke(ctx, methodSign, tx)
	if err != nil {
		return nil, arcerr.Classify(err)
	}

	signed, err := bridge.DecodeMap(result)
	if err != nil {
		return nil, arcerr.SigningFailed(err.Error())
	}
	return signed, nil
}

// CheckConnection reports the locally tracked session state.
func (s *Strategy) CheckConnection(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Compile-time interface check
var _ provider.Strategy = (*Strategy)(nil)
