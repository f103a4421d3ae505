package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the current wallet session",
	Long: `Disconnect the restored wallet session and forget the stored
connection preference. Running while already disconnected succeeds.`,
	RunE: runDisconnect,
}

func runDisconnect(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	ctx, cancel := contextWithTimeout(cmd, 30*time.Second)
	defer cancel()

	// Restore the persisted session so the provider side is torn down
	// too, not just the local record. A failed restore still clears the
	// preference, which is all a disconnect needs.
	restoreSession(ctx, cc)

	if err := cc.Manager.Disconnect(ctx); err != nil {
		return err
	}

	if err := cc.Prefs.Clear(); err != nil {
		cc.Log.Error("clearing connection preference: %v", err)
	}

	return output.FormatSuccess(cmd.OutOrStdout(), "Disconnected", cc.Fmt.Format())
}
