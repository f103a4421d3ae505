// Package wallet provides the strategy manager and the shared wallet
// session state it maintains.
package wallet

import (
	"regexp"

	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// addressRegex matches Arweave addresses: 43 base64url characters.
var addressRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{43}$`)

// ConnectionState is the base connection record.
//
// Invariants after any operation settles: Connecting and Connected are
// never both true; Address is non-empty iff Connected; Err is cleared at
// the start of every connect/disconnect attempt.
type ConnectionState struct {
	Connected   bool
	Connecting  bool
	Available   bool
	Address     string
	Permissions []string // grant order
	Err         *arcerr.WalletError
}

// SessionState is the single process-wide aggregate the rest of the
// application observes. It is created with defaults at startup, mutated
// only by the Manager, and never torn down mid-process.
type SessionState struct {
	ConnectionState
	ActiveStrategy      provider.Kind // empty when none selected
	Capabilities        provider.Capabilities
	AvailableStrategies []provider.Kind
}

// clone returns a deep copy safe to hand to observers.
func (s SessionState) clone() SessionState {
	out := s
	out.Permissions = append([]string(nil), s.Permissions...)
	out.AvailableStrategies = append([]provider.Kind(nil), s.AvailableStrategies...)
	return out
}

// HasStrategy reports whether a strategy is selected.
func (s SessionState) HasStrategy() bool {
	return s.ActiveStrategy != ""
}

// FormatAddress shortens an address for display: "abc123...wxyz".
func FormatAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// IsValidAddress reports whether the string is a well-formed Arweave
// address.
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}
