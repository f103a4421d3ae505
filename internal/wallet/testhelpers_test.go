package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/faithfularchive/arcon/internal/provider"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

const testAddress = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJ1234567"

// stubStrategy is a scriptable strategy for manager tests.
type stubStrategy struct {
	mu sync.Mutex

	kind provider.Kind
	caps provider.Capabilities

	available    bool
	availableErr error

	address      string
	connectErr   error
	connectDelay time.Duration

	disconnectErr error

	signed  map[string]any
	signErr error

	connectedLive bool

	connectCalls    int
	disconnectCalls int
	lastPermissions []string
}

func newStubStrategy(kind provider.Kind) *stubStrategy {
	return &stubStrategy{
		kind:      kind,
		caps:      provider.Capabilities{CanSign: true, SupportsPermissions: true},
		available: true,
		address:   testAddress,
	}
}

func (s *stubStrategy) Kind() provider.Kind { return s.kind }

func (s *stubStrategy) Capabilities() provider.Capabilities { return s.caps }

func (s *stubStrategy) IsAvailable(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.available, s.availableErr
}

func (s *stubStrategy) Connect(ctx context.Context, permissions []string) (string, error) {
	s.mu.Lock()
	s.connectCalls++
	s.lastPermissions = append([]string(nil), permissions...)
	delay := s.connectDelay
	address := s.address
	err := s.connectErr
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", arcerr.ConnectionFailed(ctx.Err().Error())
		}
	}

	if err != nil {
		return "", err
	}

	return address, nil
}

func (s *stubStrategy) Disconnect(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disconnectCalls++

	return s.disconnectErr
}

func (s *stubStrategy) ActiveAddress(_ context.Context) (string, error) {
	return s.address, nil
}

func (s *stubStrategy) Permissions(_ context.Context) ([]string, error) {
	return append([]string(nil), s.lastPermissions...), nil
}

func (s *stubStrategy) SignTransaction(_ context.Context, _ map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signErr != nil {
		return nil, s.signErr
	}

	return s.signed, nil
}

func (s *stubStrategy) CheckConnection(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connectedLive
}

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Debug(string, ...any) {}

func (l *recordingLogger) Error(format string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errors = append(l.errors, format)
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.errors)
}
