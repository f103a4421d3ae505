package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Equal(t, 0, r.Len())

	wander := &fakeStrategy{kind: Wander}
	beacon := &fakeStrategy{kind: Beacon}
	r.Register(wander)
	r.Register(beacon)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []Kind{Wander, Beacon}, r.Kinds())

	got, ok := r.Strategy(Wander)
	require.True(t, ok)
	assert.Same(t, wander, got.(*fakeStrategy))

	_, ok = r.Strategy(WebWallet)
	assert.False(t, ok)
}

func TestRegistry_DuplicateKindOverwrites(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	first := &fakeStrategy{kind: Wander, address: "first"}
	second := &fakeStrategy{kind: Wander, address: "second"}
	r.Register(first)
	r.Register(second)

	assert.Equal(t, 1, r.Len())
	got, ok := r.Strategy(Wander)
	require.True(t, ok)
	assert.Same(t, second, got.(*fakeStrategy))
}

func TestOptionalDefaults_SingleAddressFallback(t *testing.T) {
	t.Parallel()

	s := &fakeStrategy{kind: Beacon, available: true, address: "beacon-addr"}
	ctx := context.Background()

	_, err := s.Connect(ctx, nil)
	require.NoError(t, err)

	addrs, err := AllAddresses(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"beacon-addr"}, addrs)
}

func TestOptionalDefaults_AddressListerPreferred(t *testing.T) {
	t.Parallel()

	s := &multiAddressStrategy{
		fakeStrategy: fakeStrategy{kind: Wander},
		addresses:    []string{"a", "b", "c"},
	}

	addrs, err := AllAddresses(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, addrs)
}

func TestOptionalDefaults_EncryptDecryptUnsupported(t *testing.T) {
	t.Parallel()

	s := &fakeStrategy{kind: WebWallet}
	ctx := context.Background()

	_, err := Encrypt(ctx, s, []byte("data"), nil)
	require.ErrorIs(t, err, arcerr.ErrInvalidPermissions)

	_, err = Decrypt(ctx, s, []byte("data"), nil)
	require.ErrorIs(t, err, arcerr.ErrInvalidPermissions)
}
