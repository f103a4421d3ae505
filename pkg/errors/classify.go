package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Classify maps an opaque provider failure into exactly one wallet error
// kind. Providers surface failures as strings, generic error values, or
// anything printable; this sniffs the message with case-insensitive
// substring rules evaluated in fixed priority order so a message matching
// multiple patterns resolves deterministically.
//
// This is a best-effort heuristic over unstructured third-party errors and
// is inherently lossy. Values that already carry a WalletError keep their
// kind untouched; string sniffing is the fallback path only.
func Classify(v any) *WalletError {
	switch val := v.(type) {
	case nil:
		return ConnectionFailed("unknown provider error")
	case *WalletError:
		return val
	case error:
		var we *WalletError
		if errors.As(val, &we) {
			return we
		}
		return classifyMessage(val.Error())
	case string:
		return classifyMessage(val)
	default:
		return classifyMessage(fmt.Sprintf("%v", val))
	}
}

// classifyMessage applies the substring rules in priority order.
func classifyMessage(msg string) *WalletError {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "not installed"), strings.Contains(lower, "undefined"):
		return ErrNotInstalled
	case strings.Contains(lower, "denied"), strings.Contains(lower, "rejected"):
		return ErrUserDenied
	case strings.Contains(lower, "network"):
		return &WalletError{Kind: KindNetworkError, Message: msg}
	case strings.Contains(lower, "permission"):
		return ErrInvalidPermissions
	case strings.Contains(lower, "sign"):
		return &WalletError{Kind: KindSigningFailed, Message: msg}
	default:
		// Preserve the raw message; the catch-all kind still lets callers
		// display something actionable.
		return &WalletError{Kind: KindConnectionFailed, Message: msg}
	}
}
