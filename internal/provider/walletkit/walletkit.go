// Package walletkit is the Arweave Wallet Kit adapter. The kit library is
// not integrated yet; the strategy satisfies the full contract so the
// manager treats "registered but unimplemented" uniformly with
// "registered but unavailable".
package walletkit

import (
	"context"

	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// Strategy is the placeholder Arweave Wallet Kit adapter.
type Strategy struct{}

// New creates a Wallet Kit strategy.
func New() *Strategy {
	return &Strategy{}
}

// Kind returns the provider family.
func (s *Strategy) Kind() provider.Kind {
	return provider.WalletKit
}

// Capabilities returns the Wallet Kit family capability set.
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

// IsAvailable reports false until the kit library is integrated.
func (s *Strategy) IsAvailable(_ context.Context) (bool, error) {
	return false, nil
}

// Connect reports the missing integration.
func (s *Strategy) Connect(_ context.Context, _ []string) (string, error) {
	return "", arcerr.ConnectionFailed("wallet kit integration not implemented")
}

// Disconnect reports the missing integration.
func (s *Strategy) Disconnect(_ context.Context) error {
	return arcerr.ConnectionFailed("wallet kit integration not implemented")
}

// ActiveAddress reports the missing integration.
func (s *Strategy) ActiveAddress(_ context.Context) (string, error) {
	return "", arcerr.ConnectionFailed("wallet kit integration not implemented")
}

// Permissions reports the missing integration.
func (s *Strategy) Permissions(_ context.Context) ([]string, error) {
	return nil, arcerr.ConnectionFailed("wallet kit integration not implemented")
}

// SignTransaction reports the missing integration.
func (s *Strategy) SignTransaction(_ context.Context, _ map[string]any) (map[string]any, error) {
	return nil, arcerr.SigningFailed("wallet kit integration not implemented")
}

// CheckConnection is always false without an integration.
func (s *Strategy) CheckConnection(_ context.Context) bool {
	return false
}

// Compile-time interface check
var _ provider.Strategy = (*Strategy)(nil)
