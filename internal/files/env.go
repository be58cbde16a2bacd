package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the report root under the user's home directory.
	DefaultDirName = ".laporan"
	// HomeEnv names the environment variable that overrides the report root.
	HomeEnv = "LAPORAN_HOME"
)

// ResolveBasePath returns the report root named by LAPORAN_HOME, or ~/.laporan
// when the variable is unset or blank.
func ResolveBasePath() (string, error) {
	if root := strings.TrimSpace(os.Getenv(HomeEnv)); root != "" {
		expanded, err := ExpandHome(root)
		if err != nil {
			return "", err
		}
		return filepath.Clean(expanded), nil
	}
	return ExpandHome(filepath.Join("~", DefaultDirName))
}

// ExpandHome resolves a leading "~" or "~/" against the user's home directory.
// Other paths, including "~user" forms, are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
