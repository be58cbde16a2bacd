package files

import (
	"path/filepath"
	"testing"
	"time"
)

func TestReportPath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2023, time.May, 4, 0, 0, 0, 0, time.UTC)
	path := mgr.ReportPath(date)

	want := filepath.Join(tmp, "2023", "2023-05-04.txt")
	if path != want {
		t.Fatalf("ReportPath() = %q, want %q", path, want)
	}
}

func TestReportPathIgnoresTimeOfDay(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	morning := time.Date(2024, time.February, 29, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)
	if mgr.ReportPath(morning) != mgr.ReportPath(evening) {
		t.Fatalf("ReportPath differs within the same day: %q vs %q", mgr.ReportPath(morning), mgr.ReportPath(evening))
	}

	next := morning.AddDate(0, 0, 1)
	if mgr.ReportPath(morning) == mgr.ReportPath(next) {
		t.Fatalf("ReportPath collides for distinct days: %q", mgr.ReportPath(next))
	}
}

func TestNewManagerMakesPathAbsolute(t *testing.T) {
	mgr, err := NewManager("relative-root")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if !filepath.IsAbs(mgr.BasePath()) {
		t.Fatalf("BasePath() = %q, want absolute path", mgr.BasePath())
	}
}
