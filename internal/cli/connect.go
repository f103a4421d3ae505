package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/output"
	"github.com/faithfularchive/arcon/internal/provider"
	"github.com/faithfularchive/arcon/internal/session"
	"github.com/faithfularchive/arcon/internal/wallet"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var connectStrategy string

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a wallet",
	Long: `Connect to a wallet provider and remember the connection.

Without --strategy the best available provider is selected automatically
in priority order. The connection preference is persisted so a later
invocation can restore it.`,
	RunE: runConnect,
}

// connectResult is the JSON shape for a successful connect.
type connectResult struct {
	Strategy string   `json:"strategy"`
	Address  string   `json:"address"`
	Perms    []string `json:"permissions"`
}

func runConnect(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	timeout := cc.Cfg.ConnectTimeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := contextWithTimeout(cmd, timeout+10*time.Second)
	defer cancel()

	if connectStrategy != "" {
		kind, err := provider.ParseKind(connectStrategy)
		if err != nil {
			return err
		}
		if err := cc.Manager.SetStrategy(kind); err != nil {
			return err
		}
	} else if _, err := cc.Manager.AutoSelect(ctx); err != nil {
		return err
	}

	address, err := cc.Manager.ConnectWithTimeout(ctx, timeout)
	if err != nil {
		return err
	}

	state := cc.Manager.State()
	if prefErr := cc.Prefs.Save(session.Preference{
		Connected: true,
		Strategy:  state.ActiveStrategy,
	}); prefErr != nil {
		cc.Log.Error("saving connection preference: %v", prefErr)
	}

	w := cmd.OutOrStdout()
	if cc.Fmt.Format() == output.FormatJSON {
		return writeJSON(w, connectResult{
			Strategy: state.ActiveStrategy.String(),
			Address:  address,
			Perms:    state.Permissions,
		})
	}

	msg := fmt.Sprintf("Connected via %s: %s", state.ActiveStrategy.DisplayName(), wallet.FormatAddress(address))

	return output.FormatSuccess(w, msg, cc.Fmt.Format())
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	connectCmd.Flags().StringVarP(&connectStrategy, "strategy", "s", "", "strategy to use (wander, beacon, walletkit, webwallet)")
}
