// Package webwallet is the web-popup wallet adapter (arweave.app style
// connections that need no extension). The connector library is not
// integrated yet; the strategy satisfies the full contract and fails
// softly instead of panicking.
package webwallet

import (
	"context"

	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// Strategy is the placeholder web wallet adapter.
type Strategy struct {
	appName string
	appLogo string
}

// New creates a web wallet strategy with the given app identity, which the
// popup displays to the user during connection.
func New(appName, appLogo string) *Strategy {
	return &Strategy{appName: appName, appLogo: appLogo}
}

// Kind returns the provider family.
func (s *Strategy) Kind() provider.Kind {
	return provider.WebWallet
}

// Capabilities returns the web wallet family capability set. Web wallets
// do not use a permission system.
func (s *Strategy) Capabilities() provider.Capabilities {
	return provider.Capabilities{
		CanSign:                   true,
		CanEncrypt:                false,
		CanDecrypt:                false,
		SupportsBatchSigning:      false,
		SupportsPermissions:       false,
		SupportsMultipleAddresses: false,
	}
}

// IsAvailable is always true: popup wallets need no local installation.
func (s *Strategy) IsAvailable(_ context.Context) (bool, error) {
	return true, nil
}

// Connect reports the missing integration.
func (s *Strategy) Connect(_ context.Context, _ []string) (string, error) {
	return "", arcerr.ConnectionFailed("web wallet integration not implemented")
}

// Disconnect reports the missing integration.
func (s *Strategy) Disconnect(_ context.Context) error {
	return arcerr.ConnectionFailed("web wallet integration not implemented")
}

// ActiveAddress reports the missing integration.
func (s *Strategy) ActiveAddress(_ context.Context) (string, error) {
	return "", arcerr.ConnectionFailed("web wallet integration not implemented")
}

// Permissions is always empty: there is no permission system to query.
func (s *Strategy) Permissions(_ context.Context) ([]string, error) {
	return []string{}, nil
}

// SignTransaction reports the missing integration.
func (s *Strategy) SignTransaction(_ context.Context, _ map[string]any) (map[string]any, error) {
	return nil, arcerr.SigningFailed("web wallet integration not implemented")
}

// CheckConnection is always false without an integration.
func (s *Strategy) CheckConnection(_ context.Context) bool {
	return false
}

// Compile-time interface check
var _ provider.Strategy = (*Strategy)(nil)
