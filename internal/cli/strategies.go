package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/faithfularchive/arcon/internal/output"
	"github.com/faithfularchive/arcon/internal/provider"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List wallet strategies and their availability",
	Long: `List every registered wallet strategy, probe which ones are usable
in the current environment, and show their capability sets.`,
	RunE: runStrategies,
}

// strategyRow is the JSON shape for one strategy listing.
type strategyRow struct {
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	Available   bool   `json:"available"`
	Extension   bool   `json:"requires_extension"`
}

func runStrategies(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	ctx, cancel := contextWithTimeout(cmd, 30*time.Second)
	defer cancel()

	available := cc.Manager.DiscoverAvailable(ctx)
	availableSet := make(map[provider.Kind]bool, len(available))
	for _, kind := range available {
		availableSet[kind] = true
	}

	rows := make([]strategyRow, 0, len(provider.AllKinds()))
	for _, kind := range provider.AllKinds() {
		rows = append(rows, strategyRow{
			Kind:        kind.String(),
			DisplayName: kind.DisplayName(),
			Available:   availableSet[kind],
			Extension:   kind.RequiresExtension(),
		})
	}

	w := cmd.OutOrStdout()
	if cc.Fmt.Format() == output.FormatJSON {
		return writeJSON(w, rows)
	}

	table := output.NewStrategyTable()
	for _, row := range rows {
		table.Add(row.Kind, row.DisplayName, row.Available, row.Extension)
	}

	return table.Render(w)
}
