package files

import (
	"path/filepath"
	"testing"
)

func TestResolveBasePath(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(t.TempDir(), "reports")

	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "unset falls back to home", env: "", want: filepath.Join(home, DefaultDirName)},
		{name: "blank falls back to home", env: "  \t", want: filepath.Join(home, DefaultDirName)},
		{name: "absolute override", env: custom, want: custom},
		{name: "override is cleaned", env: custom + "/./daily/../", want: custom},
		{name: "tilde override", env: "~/worklog", want: filepath.Join(home, "worklog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv(HomeEnv, tt.env)

			got, err := ResolveBasePath()
			if err != nil {
				t.Fatalf("ResolveBasePath() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveBasePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"~":                home,
		"~/reports":        filepath.Join(home, "reports"),
		"~/a/b/../c":       filepath.Join(home, "a", "c"),
		"~alice/reports":   "~alice/reports",
		"/srv/reports":     "/srv/reports",
		"relative/reports": "relative/reports",
		"":                 "",
	}
	for in, want := range tests {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
