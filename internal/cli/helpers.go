package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/laporan/internal/logbook"
	"github.com/faizmokh/laporan/internal/stats"
)

const dateLayout = "2006-01-02"

// rangeFlags holds the raw --from/--to/--days values shared by range commands.
type rangeFlags struct {
	from string
	to   string
	days int
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Start date in YYYY-MM-DD (default: derived from --days or one month before --to)")
	cmd.Flags().StringVar(&f.to, "to", "", "End date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&f.days, "days", 0, "Number of days to include ending on --to")
}

func today(now func() time.Time) time.Time {
	t := now().In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func resolveDate(st *state, dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return today(st.now), nil
	}

	parsed, err := time.ParseInLocation(dateLayout, dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// resolveRange turns range flags into inclusive bounds. Without --from, the
// window is --days long (or the configured range_days), or else one calendar
// month ending on --to.
func resolveRange(st *state, flags rangeFlags) (time.Time, time.Time, error) {
	end, err := resolveDate(st, flags.to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if flags.from != "" {
		start, err := resolveDate(st, flags.from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	days := flags.days
	if days <= 0 && st.cfg != nil {
		days = st.cfg.RangeDays
	}
	if days > 0 {
		return end.AddDate(0, 0, -(days - 1)), end, nil
	}
	return oneMonthBefore(end), end, nil
}

// oneMonthBefore returns the same day of the previous month, clamped to that
// month's last day (2023-03-31 gives 2023-02-28).
func oneMonthBefore(t time.Time) time.Time {
	year, month, day := t.Date()
	lastDay := time.Date(year, month, 0, 0, 0, 0, 0, t.Location()).Day()
	return time.Date(year, month-1, min(day, lastDay), 0, 0, 0, 0, t.Location())
}

func sortedTags(tags logbook.Tags) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func formatEntry(entry logbook.Entry) string {
	builder := strings.Builder{}
	builder.Grow(16 + len(entry.Raw) + len(entry.Tags)*8)

	if entry.IsTodo {
		builder.WriteString("[todo] ")
	}
	builder.WriteString(strings.TrimSpace(entry.Raw))

	if len(entry.Tags) > 0 {
		builder.WriteString(" (")
		for i, tag := range sortedTags(entry.Tags) {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(tag)
			if n := entry.Tags.Count(tag); n > 1 {
				fmt.Fprintf(&builder, " x%d", n)
			}
		}
		builder.WriteString(")")
	}

	return builder.String()
}

func printMissingReport(cmd *cobra.Command, date time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "No report for %s\n", date.Format(dateLayout))
}

func printReport(cmd *cobra.Command, report logbook.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s @ %s\n", report.Date.Format(dateLayout), report.Header.Location)
	if len(report.Entries) == 0 {
		fmt.Fprintln(out, "(no entries)")
		return
	}

	for i, entry := range report.Entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatEntry(entry))
	}
}

type summaryDTO struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Reports int              `json:"reports"`
	Entries int              `json:"entries"`
	Todos   int              `json:"todos"`
	Events  int              `json:"events"`
	Tags    []stats.TagCount `json:"tags"`
}

func printSummaryJSON(cmd *cobra.Command, summary *stats.Summary) error {
	dto := summaryDTO{
		From:    summary.Start.Format(dateLayout),
		To:      summary.End.Format(dateLayout),
		Reports: summary.Reports,
		Entries: summary.Entries,
		Todos:   summary.Todos,
		Events:  summary.Events,
		Tags:    summary.Ranked(),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto)
}
