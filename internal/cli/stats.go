package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/faizmokh/laporan/internal/stats"
)

func newStatsCommand(ctx context.Context, st *state) *cobra.Command {
	var (
		flags      rangeFlags
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Rank tags by frequency across a date range.",
		Long: "stats loads every report between --from and --to (inclusive), skipping days without a report, " +
			"and prints each tag with its count and share of all tag occurrences.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(ctx, cmd, st, flags, outputJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the summary as JSON")

	return cmd
}

func runStats(ctx context.Context, cmd *cobra.Command, st *state, flags rangeFlags, outputJSON bool) error {
	start, end, err := resolveRange(st, flags)
	if err != nil {
		return err
	}

	summary, err := stats.Compute(ctx, st.reader, start, end)
	if err != nil {
		return err
	}
	st.logger.Debug("statistics computed",
		slog.Int("reports", summary.Reports),
		slog.Int("entries", summary.Entries),
		slog.Int("events", summary.Events))

	if outputJSON {
		return printSummaryJSON(cmd, summary)
	}
	fmt.Fprint(cmd.OutOrStdout(), summary.Render())
	return nil
}
