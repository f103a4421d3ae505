package provider

import (
	"context"

	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// fakeStrategy is a configurable in-memory strategy for package tests.
type fakeStrategy struct {
	kind         Kind
	caps         Capabilities
	available    bool
	availableErr error
	address      string
	connected    bool

	probeCalls int
}

func (f *fakeStrategy) Kind() Kind                 { return f.kind }
func (f *fakeStrategy) Capabilities() Capabilities { return f.caps }

func (f *fakeStrategy) IsAvailable(_ context.Context) (bool, error) {
	f.probeCalls++
	return f.available, f.availableErr
}

func (f *fakeStrategy) Connect(_ context.Context, _ []string) (string, error) {
	if !f.available {
		return "", arcerr.ErrNotInstalled
	}
	f.connected = true
	return f.address, nil
}

func (f *fakeStrategy) Disconnect(_ context.Context) error {
	f.connected = false
	return nil
}

func (f *fakeStrategy) ActiveAddress(_ context.Context) (string, error) {
	if !f.connected {
		return "", arcerr.ConnectionFailed("not connected")
	}
	return f.address, nil
}

func (f *fakeStrategy) Permissions(_ context.Context) ([]string, error) {
	return []string{}, nil
}

func (f *fakeStrategy) SignTransaction(_ context.Context, tx map[string]any) (map[string]any, error) {
	if !f.connected {
		return nil, arcerr.SigningFailed("not connected")
	}
	return tx, nil
}

func (f *fakeStrategy) CheckConnection(_ context.Context) bool {
	return f.connected
}

// multiAddressStrategy adds the AddressLister extension.
type multiAddressStrategy struct {
	fakeStrategy
	addresses []string
}

func (m *multiAddressStrategy) AllAddresses(_ context.Context) ([]string, error) {
	return m.addresses, nil
}
