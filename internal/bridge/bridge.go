// Package bridge defines the asynchronous call boundary between wallet
// strategies and externally-owned provider objects. Providers are loosely
// typed: every call crosses the boundary as a method name plus generic
// values, and every response must be defensively decoded before use.
package bridge

import (
	"context"
	"errors"
	"fmt"
)

// Decode errors.
var (
	// ErrEmptyResponse indicates the provider returned nothing where a value
	// was required.
	ErrEmptyResponse = errors.New("empty provider response")

	// ErrMalformedResponse indicates the provider returned a value of an
	// unexpected shape.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Invoker is the generic call surface of one externally-owned provider
// object. Implementations own the transport (injected script object,
// remote broker socket) and must never panic on provider misbehavior.
type Invoker interface {
	// Available reports whether the provider object is reachable in the
	// current environment. It is side-effect-free apart from transport
	// setup and returns an error only when the probe itself fails.
	Available(ctx context.Context) (bool, error)

	// Invoke calls a named method on the provider and returns its result
	// as a generic value. The call may block for arbitrary wall-clock time
	// (for example while a human approves a popup).
	Invoke(ctx context.Context, method string, args ...any) (any, error)
}

// Closer is implemented by invokers that hold a transport needing cleanup.
type Closer interface {
	Close() error
}

// DecodeString decodes a provider response as a non-empty string.
func DecodeString(v any) (string, error) {
	if v == nil {
		return "", ErrEmptyResponse
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %T", ErrMalformedResponse, v)
	}
	if s == "" {
		return "", ErrEmptyResponse
	}
	return s, nil
}

// DecodeStringList decodes a provider response as a list of strings.
// A nil response decodes to an empty list; malformed entries are errors.
func DecodeStringList(v any) ([]string, error) {
	if v == nil {
		return []string{}, nil
	}

	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list entry %T is not a string", ErrMalformedResponse, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected string list, got %T", ErrMalformedResponse, v)
	}
}

// DecodeMap decodes a provider response as a string-keyed map.
func DecodeMap(v any) (map[string]any, error) {
	if v == nil {
		return nil, ErrEmptyResponse
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrMalformedResponse, v)
	}
	return m, nil
}

// MapString extracts a non-empty string field from a decoded map.
func MapString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedResponse, key)
	}
	return DecodeString(v)
}
