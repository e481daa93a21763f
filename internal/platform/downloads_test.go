package platform

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/s3h4n/DL-Sorter/internal"
)

func fakeEnv(goos string, vars map[string]string) Env {
	return Env{
		GOOS:    goos,
		HomeDir: func() (string, error) { return "/home/sehan", nil },
		Getenv:  func(k string) string { return vars[k] },
	}
}

func TestEnv_DownloadsDir(t *testing.T) {
	testCases := []struct {
		name     string
		goos     string
		vars     map[string]string
		expected string
	}{
		{"linux default", "linux", nil, filepath.Join("/home/sehan", "Downloads")},
		{"linux xdg", "linux", map[string]string{"XDG_DOWNLOAD_DIR": "/data/dl"}, "/data/dl"},
		{"linux xdg with $HOME", "linux", map[string]string{"XDG_DOWNLOAD_DIR": "$HOME/Téléchargements"}, "/home/sehan/Téléchargements"},
		{"linux relative xdg ignored", "linux", map[string]string{"XDG_DOWNLOAD_DIR": "dl"}, filepath.Join("/home/sehan", "Downloads")},
		{"windows", "windows", nil, filepath.Join("/home/sehan", "Downloads")},
		{"darwin", "darwin", nil, filepath.Join("/home/sehan", "Downloads")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fakeEnv(tc.goos, tc.vars).DownloadsDir()
			if err != nil {
				t.Fatalf("DownloadsDir() error = %v", err)
			}
			if got != tc.expected {
				t.Errorf("DownloadsDir() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestEnv_DownloadsDir_Unsupported(t *testing.T) {
	_, err := fakeEnv("plan9", nil).DownloadsDir()
	if !errors.Is(err, internal.ErrUnsupportedOS) {
		t.Errorf("expected ErrUnsupportedOS, got %v", err)
	}
}

func TestEnv_DownloadsDir_NoHome(t *testing.T) {
	env := fakeEnv("linux", nil)
	env.HomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }

	if _, err := env.DownloadsDir(); err == nil {
		t.Error("expected error without home directory")
	}
}
