package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/bridge"
	"github.com/faithfularchive/arcon/internal/config"
	"github.com/faithfularchive/arcon/internal/output"
	"github.com/faithfularchive/arcon/internal/provider/beacon"
	"github.com/faithfularchive/arcon/internal/provider/walletkit"
	"github.com/faithfularchive/arcon/internal/provider/wander"
	"github.com/faithfularchive/arcon/internal/provider/webwallet"
	"github.com/faithfularchive/arcon/internal/session"
	"github.com/faithfularchive/arcon/internal/wallet"
)

// CommandContext holds dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Log     *config.Logger
	Fmt     *output.Formatter
	Manager *wallet.Manager
	Prefs   *session.Preferences
}

// ctxKey is the context key type for the command context.
type ctxKey struct{}

// SetCmdContext attaches the command context to a command.
func SetCmdContext(cmd *cobra.Command, cc *CommandContext) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	cmd.SetContext(context.WithValue(base, ctxKey{}, cc))
}

// GetCmdContext retrieves the command context from a command.
func GetCmdContext(cmd *cobra.Command) *CommandContext {
	if cmd.Context() == nil {
		return nil
	}
	cc, _ := cmd.Context().Value(ctxKey{}).(*CommandContext)
	return cc
}

// NewCommandContext builds the manager with all strategies registered
// and the preference store backing the session lifecycle.
func NewCommandContext(
	cfg *config.Config,
	logger *config.Logger,
	formatter *output.Formatter,
	scriptPath string,
) (*CommandContext, error) {
	manager, err := buildManager(cfg, logger, scriptPath)
	if err != nil {
		return nil, err
	}

	store, err := session.NewFileStore(cfg.PreferencesPath())
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:     cfg,
		Log:     logger,
		Fmt:     formatter,
		Manager: manager,
		Prefs:   session.NewPreferences(store, cfg.App.Slug),
	}, nil
}

// buildManager wires the four strategies into a manager according to
// the configuration. The extension-backed provider is driven by an
// optional JavaScript bootstrap so availability reflects whatever the
// script installs.
func buildManager(cfg *config.Config, logger *config.Logger, scriptPath string) (*wallet.Manager, error) {
	priority, err := cfg.PriorityKinds()
	if err != nil {
		return nil, err
	}

	manager := wallet.NewManager(&wallet.Config{
		Priority:    priority,
		Permissions: cfg.Wallet.Permissions,
		Probe:       cfg.ProbeConfig(),
		Logger:      logger,
	})

	bootstrap := ""
	if scriptPath != "" {
		data, readErr := os.ReadFile(scriptPath) // #nosec G304 -- script path is explicit user input
		if readErr != nil {
			return nil, readErr
		}
		bootstrap = string(data)
	}

	jsb, err := bridge.NewJSBridge(wander.ObjectName, bootstrap)
	if err != nil {
		return nil, err
	}
	manager.Register(wander.New(bridge.DefaultRateLimited(jsb)))

	manager.Register(beacon.New(bridge.NewWSBridge(cfg.Beacon.BrokerURL), beacon.Options{
		AppName:         cfg.App.Name,
		AppLogo:         cfg.App.Logo,
		GatewayHost:     cfg.Beacon.GatewayHost,
		GatewayPort:     cfg.Beacon.GatewayPort,
		GatewayProtocol: cfg.Beacon.GatewayProtocol,
		BrokerURL:       cfg.Beacon.BrokerURL,
	}))

	manager.Register(walletkit.New())
	manager.Register(webwallet.New(cfg.App.Name, cfg.App.Logo))

	return manager, nil
}
