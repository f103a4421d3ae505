// Package wander adapts the Wander browser-extension wallet (formerly
// ArConnect) to the provider contract. The extension injects an
// "arweaveWallet" object into the page; every call crosses the generic
// bridge boundary and every failure is classified before it escapes.
package wander

import (
	"context"

	"github.com/faithfularchive/arcon/internal/bridge"
	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// ObjectName is the global the extension injects.
const ObjectName = "arweaveWallet"

// Provider method names on the injected object.
const (
	methodConnect          = "connect"
	methodDisconnect       = "disconnect"
	methodGetActiveAddress = "getActiveAddress"
	methodGetPermissions   = "getPermissions"
	methodSign             = "sign"
	methodGetAllAddresses  = "getAllAddresses"
)

// Strategy adapts the Wander extension object.
type Strategy struct {
	invoker bridge.Invoker
}

// New creates a Wander strategy over the given provider bridge.
func New(invoker bridge.Invoker) *Strategy {
	return &Strategy{invoker: invoker}
}

// Kind returns the provider family.
func (s *Strategy) Kind() provider.Kind {
	return provider.Wander
}

// Capabilities returns the Wander family capability set.
func (s *Strategy) Capabilities() provider.Capabilities {
	return provider.Capabilities{
		CanSign:                   true,
		CanEncrypt:                true,
		CanDecrypt:                true,
		SupportsBatchSigning:      false,
		SupportsPermissions:       true,
		SupportsMultipleAddresses: true,
	}
}

// IsAvailable reports whether the extension object is injected.
func (s *Strategy) IsAvailable(ctx context.Context) (bool, error) {
	available, err := s.invoker.Available(ctx)
	if err != nil {
		return false, arcerr.Wrap(err, "probing wander extension")
	}
	return available, nil
}

// Connect requests the permission grants and returns the active address.
func (s *Strategy) Connect(ctx context.Context, permissions []string) (string, error) {
	available, err := s.IsAvailable(ctx)
	if err != nil {
		return "", err
	}
	if !available {
		return "", arcerr.ErrNotInstalled
	}

	if _, err := s.invoker.Invoke(ctx, methodConnect, permissions); err != nil {
		return "", arcerr.Classify(err)
	}

	// The extension reports the active address only after a grant.
	return s.ActiveAddress(ctx)
}

// Disconnect ends the extension session.
func (s *Strategy) Disconnect(ctx context.Context) error {
	if _, err := s.invoker.Invoke(ctx, methodDisconnect); err != nil {
		return arcerr.Classify(err)
	}
	return nil
}

// ActiveAddress returns the currently active address.
func (s *Strategy) ActiveAddress(ctx context.Context) (string, error) {
	result, err := s.invoker.Invoke(ctx, methodGetActiveAddress)
	if err != nil {
		return "", arcerr.Classify(err)
	}

	address, err := bridge.DecodeString(result)
	if err != nil {
		return "", arcerr.ConnectionFailed("no active address found")
	}
	return address, nil
}

// Permissions returns the currently granted permissions.
func (s *Strategy) Permissions(ctx context.Context) ([]string, error) {
	result, err := s.invoker.Invoke(ctx, methodGetPermissions)
	if err != nil {
		return nil, arcerr.Classify(err)
	}

	permissions, err := bridge.DecodeStringList(result)
	if err != nil {
		// Tolerate a malformed grant list the way the extension's own
		// clients do: treat it as no grants rather than failing.
		return []string{}, nil
	}
	return permissions, nil
}

// SignTransaction submits transaction data to the extension for signing.
func (s *Strategy) SignTransaction(ctx context.Context, tx map[string]any) (map[string]any, error) {
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

// CheckConnection probes for an active session without failing.
func (s *Strategy) CheckConnection(ctx context.Context) bool {
	available, err := s.IsAvailable(ctx)
	if err != nil || !available {
		return false
	}

	_, err = s.ActiveAddress(ctx)
	return err == nil
}

// AllAddresses lists every address the extension manages, falling back to
// the single active address when enumeration is unsupported.
func (s *Strategy) AllAddresses(ctx context.Context) ([]string, error) {
	result, err := s.invoker.Invoke(ctx, methodGetAllAddresses)
	if err != nil {
		address, addrErr := s.ActiveAddress(ctx)
		if addrErr != nil {
			return nil, addrErr
		}
		return []string{address}, nil
	}

	addresses, err := bridge.DecodeStringList(result)
	if err != nil {
		return []string{}, nil
	}
	return addresses, nil
}

// Compile-time interface checks
var (
	_ provider.Strategy      = (*Strategy)(nil)
	_ provider.AddressLister = (*Strategy)(nil)
)
