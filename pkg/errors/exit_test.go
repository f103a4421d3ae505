package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitGeneral},
		{"not installed", ErrNotInstalled, ExitNotInstalled},
		{"user denied", ErrUserDenied, ExitUserDenied},
		{"network", NetworkError("gateway unreachable"), ExitNetwork},
		{"permissions", ErrInvalidPermissions, ExitPermissions},
		{"transaction", TransactionFailed("dropped"), ExitTransaction},
		{"connection", ConnectionFailed("popup closed"), ExitConnection},
		{"signing", SigningFailed("keystore locked"), ExitSigning},
		{"wrapped wallet error", Wrap(ErrUserDenied, "connecting"), ExitUserDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}
