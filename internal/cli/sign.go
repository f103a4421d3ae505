package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Sign a transaction payload",
	Long: `Sign the JSON transaction payload in the given file through the
connected wallet and print the signed transaction.

Requires a connected session; run 'arcon connect' first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

// signResult is the JSON shape for a signed payload.
type signResult struct {
	Strategy string         `json:"strategy"`
	Signed   map[string]any `json:"signed"`
}

func runSign(cmd *cobra.Command, args []string) error {
	cc := GetCmdContext(cmd)

	payload, err := os.ReadFile(args[0]) // #nosec G304 -- payload path is explicit user input
	if err != nil {
		return err
	}

	var tx map[string]any
	if err = json.Unmarshal(payload, &tx); err != nil {
		return fmt.Errorf("parse transaction payload: %w", err)
	}

	ctx, cancel := contextWithTimeout(cmd, 60*time.Second)
	defer cancel()

	restoreSession(ctx, cc)

	signed, err := cc.Manager.SignTransaction(ctx, tx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if cc.Fmt.Format() == output.FormatJSON {
		state := cc.Manager.State()
		return writeJSON(w, signResult{
			Strategy: state.ActiveStrategy.String(),
			Signed:   signed,
		})
	}

	return writeJSON(w, signed)
}
