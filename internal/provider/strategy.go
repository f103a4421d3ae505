package provider

import (
	"context"

	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// Capabilities describes what a provider family can do. Each strategy
// supplies a fixed value at construction; it is not re-derived per
// connection and is read-only to consumers.
type Capabilities struct {
	CanSign                   bool `json:"can_sign"`
	CanEncrypt                bool `json:"can_encrypt"`
	CanDecrypt                bool `json:"can_decrypt"`
	SupportsBatchSigning      bool `json:"supports_batch_signing"`
	SupportsPermissions       bool `json:"supports_permissions"`
	SupportsMultipleAddresses bool `json:"supports_multiple_addresses"`
}

// Strategy is the contract every wallet provider adapter implements.
// Adapters translate the provider's native call shape and failure values
// into these generic forms; no provider-specific type may leak past an
// adapter's boundary.
type Strategy interface {
	// Kind returns the provider family this strategy adapts.
	Kind() Kind

	// Capabilities returns the fixed capability set of the family.
	Capabilities() Capabilities

	// IsAvailable reports whether the provider is reachable in the current
	// environment. Side-effect-free apart from transport setup.
	IsAvailable(ctx context.Context) (bool, error)

	// Connect requests the given permission grants and returns the active
	// address on success.
	Connect(ctx context.Context, permissions []string) (string, error)

	// Disconnect ends the provider session. Disconnecting an already
	// disconnected strategy succeeds trivially.
	Disconnect(ctx context.Context) error

	// ActiveAddress returns the currently active address.
	ActiveAddress(ctx context.Context) (string, error)

	// Permissions returns the currently granted permissions in grant
	// order. Providers without a permission system return an empty list.
	Permissions(ctx context.Context) ([]string, error)

	// SignTransaction submits transaction data for signing and returns
	// the signed form.
	SignTransaction(ctx context.Context, tx map[string]any) (map[string]any, error)

	// CheckConnection is a non-throwing best-effort status probe. It
	// returns false rather than failing when the provider is unreachable.
	CheckConnection(ctx context.Context) bool
}

// AddressLister is the optional extension for providers that expose more
// than one address.
type AddressLister interface {
	AllAddresses(ctx context.Context) ([]string, error)
}

// Encrypter is the optional extension for providers that can encrypt data
// with the wallet key.
type Encrypter interface {
	Encrypt(ctx context.Context, data []byte, options map[string]string) ([]byte, error)
}

// Decrypter is the optional extension for providers that can decrypt data
// with the wallet key.
type Decrypter interface {
	Decrypt(ctx context.Context, data []byte, options map[string]string) ([]byte, error)
}

// AllAddresses enumerates a strategy's addresses, falling back to the
// single active address when the strategy does not list addresses itself.
// Optional-capability defaults live here so adapters do not duplicate them.
func AllAddresses(ctx context.Context, s Strategy) ([]string, error) {
	if lister, ok := s.(AddressLister); ok {
		return lister.AllAddresses(ctx)
	}

	address, err := s.ActiveAddress(ctx)
	if err != nil {
		return nil, err
	}
	return []string{address}, nil
}

// Encrypt encrypts data with the wallet when the strategy supports it.
func Encrypt(ctx context.Context, s Strategy, data []byte, options map[string]string) ([]byte, error) {
	if enc, ok := s.(Encrypter); ok {
		return enc.Encrypt(ctx, data, options)
	}
	return nil, arcerr.ErrInvalidPermissions
}

// Decrypt decrypts data with the wallet when the strategy supports it.
func Decrypt(ctx context.Context, s Strategy, data []byte, options map[string]string) ([]byte, error) {
	if dec, ok := s.(Decrypter); ok {
		return dec.Decrypt(ctx, data, options)
	}
	return nil, arcerr.ErrInvalidPermissions
}
