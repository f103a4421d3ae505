// Package provider defines the wallet provider contract and common types.
package provider

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind identifies a wallet provider family.
type Kind string

// Supported provider kinds.
const (
	// Wander is a browser-extension wallet injected into the page
	// (formerly ArConnect).
	Wander Kind = "wander"
	// Beacon is an iOS-based agent-first wallet reached through a remote
	// broker bridge.
	Beacon Kind = "beacon"
	// WalletKit is the unified wallet connection library.
	WalletKit Kind = "walletkit"
	// WebWallet is a web-based popup wallet connection.
	WebWallet Kind = "webwallet"
)

// maxSuggestionDistance bounds the edit distance for "did you mean" hints.
const maxSuggestionDistance = 2

// String returns the kind identifier string.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known provider family.
func (k Kind) IsValid() bool {
	switch k {
	case Wander, Beacon, WalletKit, WebWallet:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-facing provider name.
func (k Kind) DisplayName() string {
	switch k {
	case Wander:
		return "Wander"
	case Beacon:
		return "Beacon"
	case WalletKit:
		return "Arweave Wallet Kit"
	case WebWallet:
		return "Web Wallet"
	default:
		return string(k)
	}
}

// Description returns a short description of the provider family.
func (k Kind) Description() string {
	switch k {
	case Wander:
		return "Non-custodial Arweave & AO wallet for your favorite browser"
	case Beacon:
		return "iOS based agent first wallet for AO"
	case WalletKit:
		return "Universal wallet connection library"
	case WebWallet:
		return "Web-based wallet connection"
	default:
		return ""
	}
}

// RequiresExtension returns true if the provider needs a browser extension.
func (k Kind) RequiresExtension() bool {
	return k == Wander
}

// AllKinds returns all known provider kinds.
func AllKinds() []Kind {
	return []Kind{Wander, Beacon, WalletKit, WebWallet}
}

// DefaultPriority returns the auto-selection preference order.
func DefaultPriority() []Kind {
	return []Kind{Wander, Beacon, WalletKit, WebWallet}
}

// ParseKind parses a string into a provider kind. Unknown values produce
// an error with a "did you mean" suggestion for near-miss spellings.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.IsValid() {
		return k, nil
	}

	if suggestion := suggestKind(string(k)); suggestion != "" {
		return "", fmt.Errorf("unknown wallet strategy %q (did you mean %q?)", s, suggestion)
	}
	return "", fmt.Errorf("unknown wallet strategy %q", s)
}

// suggestKind returns the closest known kind within the suggestion
// distance, or empty when nothing is close enough.
func suggestKind(input string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1

	for _, k := range AllKinds() {
		dist := levenshtein.ComputeDistance(input, string(k))
		if dist < bestDist {
			bestDist = dist
			best = string(k)
		}
	}

	if bestDist > maxSuggestionDistance {
		return ""
	}
	return best
}
