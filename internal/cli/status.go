package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/output"
	"github.com/faithfularchive/arcon/internal/provider"
	"github.com/faithfularchive/arcon/internal/wallet"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var statusQR bool

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the wallet session state",
	Long: `Restore the persisted wallet session, if any, and show the resulting
connection state, active strategy and capabilities.`,
	RunE: runStatus,
}

// statusResult is the JSON shape for the session state.
type statusResult struct {
	Connected    bool                  `json:"connected"`
	Strategy     string                `json:"strategy,omitempty"`
	Address      string                `json:"address,omitempty"`
	Permissions  []string              `json:"permissions,omitempty"`
	Capabilities provider.Capabilities `json:"capabilities"`
	Error        string                `json:"error,omitempty"`
}

// restoreSession attempts to reconnect the persisted session. Failures
// are logged, not fatal: status and disconnect still operate on the
// local state.
func restoreSession(ctx context.Context, cc *CommandContext) {
	lc := wallet.NewLifecycle(cc.Manager, cc.Prefs, cc.Log)
	if err := lc.RestoreOnStart(ctx); err != nil {
		cc.Log.Error("restoring session: %v", err)
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	ctx, cancel := contextWithTimeout(cmd, 30*time.Second)
	defer cancel()

	restoreSession(ctx, cc)

	state := cc.Manager.State()

	w := cmd.OutOrStdout()
	if cc.Fmt.Format() == output.FormatJSON {
		result := statusResult{
			Connected:    state.Connected,
			Strategy:     state.ActiveStrategy.String(),
			Address:      state.Address,
			Permissions:  state.Permissions,
			Capabilities: state.Capabilities,
		}
		if state.Err != nil {
			result.Error = state.Err.Error()
		}
		return writeJSON(w, result)
	}

	if !state.Connected {
		outln(w, "Not connected.")
		if state.Err != nil {
			out(w, "Last error: %s\n", state.Err)
		}
		return nil
	}

	out(w, "Connected via %s\n", state.ActiveStrategy.DisplayName())
	out(w, "Address:     %s\n", state.Address)
	out(w, "Short form:  %s\n", wallet.FormatAddress(state.Address))
	if len(state.Permissions) > 0 {
		out(w, "Permissions: %v\n", state.Permissions)
	}

	if statusQR {
		if err := output.RenderAddressQR(w, state.Address); err != nil {
			return err
		}
	}

	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	statusCmd.Flags().BoolVar(&statusQR, "qr", false, "render the address as a QR code (terminal only)")
}
