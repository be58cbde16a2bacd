package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/laporan/internal/ui"
)

func newBrowseCommand(ctx context.Context, st *state) *cobra.Command {
	var (
		dateFlag string
		daysFlag int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse daily reports and range statistics in a terminal UI.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(st, dateFlag)
			if err != nil {
				return err
			}
			days := daysFlag
			if days <= 0 {
				days = st.cfg.RangeDays
			}

			m := ui.NewModel(ctx, st.reader, date, days, ui.WithClock(st.now))
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Initial date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&daysFlag, "days", 0, "Statistics window length ending on the displayed date (default: 30)")

	return cmd
}
