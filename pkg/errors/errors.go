// Package errors provides structured error handling for arcon.
// It defines the closed set of wallet failure kinds, sentinel errors,
// and helpers for wrapping provider failures with context.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies one of the closed set of wallet failure categories.
// Every failure crossing a provider boundary is mapped to exactly one Kind
// before it reaches a caller or the shared session state.
type Kind int

// Wallet failure kinds.
const (
	// KindNotInstalled indicates the provider is absent from the environment.
	KindNotInstalled Kind = iota
	// KindUserDenied indicates the user rejected the connection or request.
	KindUserDenied
	// KindNetworkError indicates a transport-level failure.
	KindNetworkError
	// KindInvalidPermissions indicates a permission request was invalid or
	// the operation is not covered by the granted (or supported) permissions.
	KindInvalidPermissions
	// KindTransactionFailed indicates the provider rejected a transaction.
	KindTransactionFailed
	// KindConnectionFailed indicates a connect/disconnect/probe failure that
	// fits no more specific kind.
	KindConnectionFailed
	// KindSigningFailed indicates a signing request failed or was rejected.
	KindSigningFailed
)

// String returns the machine-readable code for a kind.
func (k Kind) String() string {
	switch k {
	case KindNotInstalled:
		return "NOT_INSTALLED"
	case KindUserDenied:
		return "USER_DENIED"
	case KindNetworkError:
		return "NETWORK_ERROR"
	case KindInvalidPermissions:
		return "INVALID_PERMISSIONS"
	case KindTransactionFailed:
		return "TRANSACTION_FAILED"
	case KindConnectionFailed:
		return "CONNECTION_FAILED"
	case KindSigningFailed:
		return "SIGNING_FAILED"
	default:
		return "CONNECTION_FAILED"
	}
}

// WalletError is the structured error type for arcon.
type WalletError struct {
	Kind    Kind   // Failure category
	Message string // Human-readable message
	Cause   error  // Underlying error, if any
}

func (e *WalletError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WalletError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for WalletError. Two wallet errors match when
// their kinds are equal, so sentinels compare against detail-carrying values.
func (e *WalletError) Is(target error) bool {
	var t *WalletError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors for the fixed-message kinds.
var (
	ErrNotInstalled = &WalletError{
		Kind:    KindNotInstalled,
		Message: "no wallet is installed or available",
	}

	ErrUserDenied = &WalletError{
		Kind:    KindUserDenied,
		Message: "user denied wallet connection",
	}

	ErrInvalidPermissions = &WalletError{
		Kind:    KindInvalidPermissions,
		Message: "invalid permissions requested",
	}
)

// New creates a new WalletError with the given kind and message.
func New(kind Kind, message string) *WalletError {
	return &WalletError{
		Kind:    kind,
		Message: message,
	}
}

// Newf creates a new WalletError with a formatted message.
func Newf(kind Kind, format string, args ...any) *WalletError {
	return &WalletError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// NetworkError creates a network error carrying the given detail.
func NetworkError(detail string) *WalletError {
	return &WalletError{
		Kind:    KindNetworkError,
		Message: fmt.Sprintf("network error: %s", detail),
	}
}

// TransactionFailed creates a transaction failure carrying the given detail.
func TransactionFailed(detail string) *WalletError {
	return &WalletError{
		Kind:    KindTransactionFailed,
		Message: fmt.Sprintf("transaction failed: %s", detail),
	}
}

// ConnectionFailed creates a connection failure carrying the given detail.
func ConnectionFailed(detail string) *WalletError {
	return &WalletError{
		Kind:    KindConnectionFailed,
		Message: fmt.Sprintf("connection failed: %s", detail),
	}
}

// SigningFailed creates a signing failure carrying the given detail.
func SigningFailed(detail string) *WalletError {
	return &WalletError{
		Kind:    KindSigningFailed,
		Message: fmt.Sprintf("transaction signing failed: %s", detail),
	}
}

// Wrap wraps an error with additional context, preserving the wallet kind
// when the cause already carries one. A nil error wraps to nil.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var we *WalletError
	if errors.As(err, &we) {
		return &WalletError{
			Kind:    we.Kind,
			Message: fmt.Sprintf("%s: %s", msg, we.Message),
			Cause:   err,
		}
	}

	return &WalletError{
		Kind:    KindConnectionFailed,
		Message: msg,
		Cause:   err,
	}
}

// KindOf returns the kind carried by an error. Errors that do not carry a
// WalletError report KindConnectionFailed, the taxonomy's catch-all.
func KindOf(err error) Kind {
	var we *WalletError
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindConnectionFailed
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
