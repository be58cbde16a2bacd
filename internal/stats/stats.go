// Package stats folds the tags of every report in a date range into ranked totals.
package stats

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/faizmokh/laporan/internal/logbook"
)

const dateLayout = "2006-01-02"

// Source enumerates the reports that exist between two dates, inclusive.
type Source interface {
	Reports(ctx context.Context, start, end time.Time) iter.Seq2[logbook.Report, error]
}

// Summary holds tag totals for an inclusive date range. It is computed once and
// not modified afterwards.
type Summary struct {
	Start time.Time
	End   time.Time

	// Totals maps tag name to occurrences across all entries. Absent tags count
	// as zero; use Count for lookups.
	Totals logbook.Tags
	// Events is the sum of Totals.
	Events int

	Reports int
	Entries int
	Todos   int
}

// TagCount is one ranked line of a summary.
type TagCount struct {
	Tag     string  `json:"tag"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Compute loads every available report from start to end and sums their tag
// counts. Days without a report are skipped; any other load failure aborts the
// computation and is returned.
func Compute(ctx context.Context, source Source, start, end time.Time) (*Summary, error) {
	summary := &Summary{
		Start:  start,
		End:    end,
		Totals: logbook.Tags{},
	}

	for report, err := range source.Reports(ctx, start, end) {
		if err != nil {
			return nil, fmt.Errorf("compute statistics: %w", err)
		}
		summary.Reports++
		for _, entry := range report.Entries {
			summary.Entries++
			if entry.IsTodo {
				summary.Todos++
			}
			for tag, count := range entry.Tags {
				summary.Totals[tag] += count
			}
		}
	}

	summary.Events = summary.Totals.Total()
	return summary, nil
}

// Count returns the total for tag, or zero if it never occurred.
func (s *Summary) Count(tag string) int {
	return s.Totals.Count(tag)
}

// Percent returns tag's share of all events. It is zero when there are no events.
func (s *Summary) Percent(tag string) float64 {
	return percent(s.Count(tag), s.Events)
}

// Ranked lists every tag by count descending, breaking ties by name ascending.
func (s *Summary) Ranked() []TagCount {
	ranked := make([]TagCount, 0, len(s.Totals))
	for tag, count := range s.Totals {
		ranked = append(ranked, TagCount{
			Tag:     tag,
			Count:   count,
			Percent: percent(count, s.Events),
		})
	}
	slices.SortFunc(ranked, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return ranked
}

// Render produces the human-readable summary: a line naming the range followed
// by one "tag: count (pp.pp%)" line per tag in ranked order.
func (s *Summary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statistics from %s to %s\n", s.Start.Format(dateLayout), s.End.Format(dateLayout))
	for _, tc := range s.Ranked() {
		fmt.Fprintf(&b, "%s: %d (%.2f%%)\n", tc.Tag, tc.Count, tc.Percent)
	}
	return b.String()
}

func (s *Summary) String() string {
	return s.Render()
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}
