package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/config"
	"github.com/faithfularchive/arcon/internal/output"
	"github.com/faithfularchive/arcon/internal/provider"
	"github.com/faithfularchive/arcon/internal/session"
	"github.com/faithfularchive/arcon/internal/wallet"
	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

const testAddress = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJ1234567"

// fakeStrategy is a scriptable provider strategy for CLI tests.
type fakeStrategy struct {
	kind       provider.Kind
	available  bool
	address    string
	connectErr error
	signed     map[string]any
	signErr    error
}

func (f *fakeStrategy) Kind() provider.Kind { return f.kind }

func (f *fakeStrategy) Capabilities() provider.Capabilities {
	return provider.Capabilities{CanSign: true, SupportsPermissions: true}
}

func (f *fakeStrategy) IsAvailable(_ context.Context) (bool, error) {
	return f.available, nil
}

func (f *fakeStrategy) Connect(_ context.Context, _ []string) (string, error) {
	if f.connectErr != nil {
		return "", f.connectErr
	}
	return f.address, nil
}

func (f *fakeStrategy) Disconnect(_ context.Context) error { return nil }

func (f *fakeStrategy) ActiveAddress(_ context.Context) (string, error) {
	return f.address, nil
}

func (f *fakeStrategy) Permissions(_ context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeStrategy) SignTransaction(_ context.Context, _ map[string]any) (map[string]any, error) {
	if f.signErr != nil {
		return nil, f.signErr
	}
	return f.signed, nil
}

func (f *fakeStrategy) CheckConnection(_ context.Context) bool { return f.address != "" }

func newFakeStrategy(kind provider.Kind) *fakeStrategy {
	return &fakeStrategy{
		kind:      kind,
		available: true,
		address:   testAddress,
		signed:    map[string]any{"signature": "sig"},
	}
}

var errFakeDenied = arcerr.New(arcerr.KindUserDenied, "user rejected the connection request")

// testEnv bundles a command context with output capture for CLI tests.
type testEnv struct {
	cc  *CommandContext
	buf *bytes.Buffer
}

// newTestEnv builds a command context around the given strategies using
// JSON output and an in-memory preference store.
func newTestEnv(t *testing.T, strategies ...provider.Strategy) *testEnv {
	t.Helper()

	cfg := config.Defaults()
	cfg.Home = t.TempDir()
	cfg.Storage.PreferencesFile = filepath.Join(cfg.Home, "preferences.json")

	buf := &bytes.Buffer{}

	manager := wallet.NewManager(&wallet.Config{
		Permissions: cfg.Wallet.Permissions,
	})
	for _, s := range strategies {
		manager.Register(s)
	}

	return &testEnv{
		cc: &CommandContext{
			Cfg:     cfg,
			Log:     config.NullLogger(),
			Fmt:     output.NewFormatter(output.FormatJSON),
			Manager: manager,
			Prefs:   session.NewPreferences(session.NewMemoryStore(), cfg.App.Slug),
		},
		buf: buf,
	}
}

// newTestCommand returns a command wired to the test env with output
// captured in the env buffer.
func (e *testEnv) newTestCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(e.buf)
	cmd.SetErr(e.buf)
	cmd.SetContext(context.Background())
	SetCmdContext(cmd, e.cc)
	return cmd
}
