package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_SubstringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  string
		want Kind
	}{
		{"not installed", "arweaveWallet is not installed", KindNotInstalled},
		{"undefined global", "window.arweaveWallet is undefined", KindNotInstalled},
		{"denied", "User denied request", KindUserDenied},
		{"rejected", "request was REJECTED by user", KindUserDenied},
		{"network", "Network error: socket closed", KindNetworkError},
		{"permission", "missing permission ACCESS_ADDRESS", KindInvalidPermissions},
		{"sign", "failed to sign data item", KindSigningFailed},
		{"fallback", "something inexplicable happened", KindConnectionFailed},
		{"empty", "", KindConnectionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.msg)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

// A message matching multiple patterns must resolve by rule priority,
// not by accident of evaluation order.
func TestClassify_PriorityOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	// "denied" outranks "sign" and "permission".
	got := Classify("user denied permission to sign")
	assert.Equal(t, KindUserDenied, got.Kind)

	// "undefined" outranks everything below it.
	got = Classify("undefined error while signing over network")
	assert.Equal(t, KindNotInstalled, got.Kind)

	// "network" outranks "sign".
	got = Classify("network failure during signing")
	assert.Equal(t, KindNetworkError, got.Kind)
}

func TestClassify_CanonicalMessagesRoundTrip(t *testing.T) {
	t.Parallel()

	// Classifying a kind's own display message must yield the same kind.
	canonical := []*WalletError{
		ErrNotInstalled,
		ErrUserDenied,
		ErrInvalidPermissions,
		NetworkError("x"),
		SigningFailed("x"),
		ConnectionFailed("x"),
	}

	for _, err := range canonical {
		got := Classify(err.Message)
		assert.Equal(t, err.Kind, got.Kind, "message %q", err.Message)
	}
}

func TestClassify_StructuredErrorPassesThrough(t *testing.T) {
	t.Parallel()

	// An already-classified error keeps its kind even when its message
	// would sniff to a different one.
	structured := &WalletError{Kind: KindTransactionFailed, Message: "user denied"}
	got := Classify(structured)
	assert.Same(t, structured, got)

	wrapped := Wrap(structured, "sending")
	got = Classify(wrapped)
	assert.Equal(t, KindTransactionFailed, got.Kind)
}

func TestClassify_ForeignValues(t *testing.T) {
	t.Parallel()

	got := Classify(stderrors.New("connection rejected by peer"))
	assert.Equal(t, KindUserDenied, got.Kind)

	got = Classify(42)
	assert.Equal(t, KindConnectionFailed, got.Kind)
	assert.Equal(t, "42", got.Message)

	got = Classify(nil)
	assert.Equal(t, KindConnectionFailed, got.Kind)
}

func TestClassify_PreservesRawMessage(t *testing.T) {
	t.Parallel()

	raw := "provider exploded in a novel way"
	got := Classify(raw)
	assert.Equal(t, raw, got.Message)
}
