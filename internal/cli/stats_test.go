package cli

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/faizmokh/laporan/internal/logbook"
)

func TestStatsCommandDefaultsToOneMonth(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-04-29", "Activity Report 2023-04-29 (Office)\n[Old]\n")
	writeReport(t, st, "2023-04-30", "Activity Report 2023-04-30 (Office)\n[Dev]\n")

	out := executeCommand(t, newStatsCommand(context.Background(), st))

	assertContains(t, out, "Statistics from 2023-04-30 to 2023-05-31")
	assertContains(t, out, "Dev: 1 (100.00%)")
	assertNotContains(t, out, "Old")
}

func TestStatsCommandDefaultMonthClampsToMonthEnd(t *testing.T) {
	st := newTestState(t, "2025-03-31")
	writeReport(t, st, "2025-02-27", "Activity Report 2025-02-27 (Office)\n[Early]\n")
	writeReport(t, st, "2025-02-28", "Activity Report 2025-02-28 (Office)\n[Feb]\n")
	writeReport(t, st, "2025-03-02", "Activity Report 2025-03-02 (Office)\n[Mar]\n")

	out := executeCommand(t, newStatsCommand(context.Background(), st))

	assertContains(t, out, "Statistics from 2025-02-28 to 2025-03-31")
	assertContains(t, out, "Feb: 1 (50.00%)")
	assertContains(t, out, "Mar: 1 (50.00%)")
	assertNotContains(t, out, "Early")
}

func TestOneMonthBefore(t *testing.T) {
	cases := map[string]string{
		"2025-03-31": "2025-02-28",
		"2024-03-30": "2024-02-29",
		"2023-05-31": "2023-04-30",
		"2023-05-15": "2023-04-15",
		"2024-01-31": "2023-12-31",
	}
	for in, want := range cases {
		got := oneMonthBefore(mustParseDate(t, in)).Format(dateLayout)
		if got != want {
			t.Fatalf("oneMonthBefore(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestStatsCommandHonorsDays(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-05-28", "Activity Report 2023-05-28 (Office)\n[Early]\n")
	writeReport(t, st, "2023-05-29", "Activity Report 2023-05-29 (Office)\n[Late]\n")

	out := executeCommand(t, newStatsCommand(context.Background(), st), "--days", "3")

	assertContains(t, out, "Statistics from 2023-05-29 to 2023-05-31")
	assertContains(t, out, "Late: 1 (100.00%)")
	assertNotContains(t, out, "Early")
}

func TestStatsCommandUsesConfiguredRange(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	st.cfg.RangeDays = 10

	out := executeCommand(t, newStatsCommand(context.Background(), st))
	assertContains(t, out, "Statistics from 2023-05-22 to 2023-05-31")
}

func TestStatsCommandEmptyWhenFromAfterTo(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-05-10", "Activity Report 2023-05-10 (Office)\n[Dev]\n")

	out := executeCommand(t, newStatsCommand(context.Background(), st), "--from", "2023-05-20", "--to", "2023-05-01")
	if out != "Statistics from 2023-05-20 to 2023-05-01\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestStatsCommandJSONOutput(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-05-04", "Activity Report 2023-05-04 (Remote)\n[A]\n[A][B][B] (TODO)\n")

	out := executeCommand(t, newStatsCommand(context.Background(), st), "--from", "2023-05-01", "--json")

	var decoded summaryDTO
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Unmarshal json: %v\npayload: %s", err, out)
	}
	if decoded.From != "2023-05-01" || decoded.To != "2023-05-31" {
		t.Fatalf("unexpected range: %+v", decoded)
	}
	if decoded.Events != 4 || decoded.Reports != 1 || decoded.Entries != 2 || decoded.Todos != 1 {
		t.Fatalf("unexpected totals: %+v", decoded)
	}
	if len(decoded.Tags) != 2 || decoded.Tags[0].Tag != "A" || decoded.Tags[0].Percent != 50 {
		t.Fatalf("unexpected tags: %+v", decoded.Tags)
	}
}

func TestStatsCommandRejectsInvalidDate(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	cmd := newStatsCommand(context.Background(), st)
	cmd.SetArgs([]string{"--from", "2023-02-30"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "parse date") {
		t.Fatalf("Execute error = %v, want parse date error", err)
	}
}

func TestShowCommandWithoutReport(t *testing.T) {
	st := newTestState(t, "2023-05-31")

	out := executeCommand(t, newShowCommand(context.Background(), st))
	assertContains(t, out, "No report for 2023-05-31")
}

func TestShowCommandHeaderOnly(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-05-31", "Activity Report 2023-05-31 ()\n")

	out := executeCommand(t, newShowCommand(context.Background(), st))
	assertContains(t, out, "2023-05-31 @ \n(no entries)")
}

func TestShowCommandInvalidHeader(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-05-31", "Notes for today\n[Dev]\n")

	cmd := newShowCommand(context.Background(), st)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	if !errors.Is(err, logbook.ErrHeaderParse) {
		t.Fatalf("Execute error = %v, want ErrHeaderParse", err)
	}
}

func TestListCommandWithoutReports(t *testing.T) {
	st := newTestState(t, "2023-05-31")

	out := executeCommand(t, newListCommand(context.Background(), st), "--days", "7")
	assertContains(t, out, "No reports between 2023-05-25 and 2023-05-31")
}

func TestTodosCommandWithoutTodos(t *testing.T) {
	st := newTestState(t, "2023-05-31")
	writeReport(t, st, "2023-05-30", "Activity Report 2023-05-30 (Office)\n[Dev] shipped\n")

	out := executeCommand(t, newTodosCommand(context.Background(), st), "--days", "7")
	assertContains(t, out, "No open todos between 2023-05-25 and 2023-05-31")
}
