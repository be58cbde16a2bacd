package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/laporan/internal/logbook"
)

func newShowCommand(ctx context.Context, st *state) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the report for today or a specific date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDate, err := resolveDate(st, dateFlag)
			if err != nil {
				return err
			}

			report, err := st.reader.Load(ctx, targetDate)
			if err != nil {
				if errors.Is(err, logbook.ErrReportNotFound) {
					printMissingReport(cmd, targetDate)
					return nil
				}
				return err
			}

			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func newListCommand(ctx context.Context, st *state) *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports across a range of days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := resolveRange(st, flags)
			if err != nil {
				return err
			}

			printed := 0
			for report, err := range st.reader.Reports(ctx, start, end) {
				if err != nil {
					return err
				}
				if printed > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printReport(cmd, report)
				printed++
			}

			if printed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No reports between %s and %s\n",
					start.Format(dateLayout), end.Format(dateLayout))
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newTodosCommand(ctx context.Context, st *state) *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "todos",
		Short: "List entries marked (TODO) across a range of days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := resolveRange(st, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			found := 0
			for report, err := range st.reader.Reports(ctx, start, end) {
				if err != nil {
					return err
				}
				for i, entry := range report.Entries {
					if !entry.IsTodo {
						continue
					}
					fmt.Fprintf(out, "%s #%d %s\n", report.Date.Format(dateLayout), i+1, formatEntry(entry))
					found++
				}
			}

			if found == 0 {
				fmt.Fprintf(out, "No open todos between %s and %s\n",
					start.Format(dateLayout), end.Format(dateLayout))
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
