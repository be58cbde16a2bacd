package files

import (
	"fmt"
	"path/filepath"
	"time"
)

// Extension is appended to every report filename.
const Extension = ".txt"

// Manager centralizes where daily reports live on disk and how files are named.
// It never creates or modifies report files.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.laporan (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandHome(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all reports.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ReportPath resolves the absolute path to the report for the supplied date:
// <base>/<YYYY>/<YYYY-MM-DD>.txt. Equal calendar dates always map to the same
// path regardless of time of day or location.
func (m *Manager) ReportPath(t time.Time) string {
	yearDir := filepath.Join(m.basePath, fmt.Sprintf("%04d", t.Year()))
	return filepath.Join(yearDir, fmt.Sprintf("%04d-%02d-%02d%s", t.Year(), t.Month(), t.Day(), Extension))
}
