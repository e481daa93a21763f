package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestSnapshotter_Snapshot(t *testing.T) {
	tempDir := t.TempDir()

	testFiles := []string{
		"b.pdf",
		"a.png",
		".hidden_file",
		"Images/old.png",
	}

	for _, file := range testFiles {
		fullPath := filepath.Join(tempDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	s := NewSnapshotter(afero.NewOsFs())
	names, err := s.Snapshot(tempDir)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	expected := []string{".hidden_file", "a.png", "b.pdf"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Snapshot() = %v, want %v", names, expected)
	}

	s.IncludeHidden = false
	names, err = s.Snapshot(tempDir)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	expected = []string{"a.png", "b.pdf"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Snapshot() without hidden = %v, want %v", names, expected)
	}
}

func TestSnapshotter_Snapshot_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/downloads", 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	names, err := NewSnapshotter(fs).Snapshot("/downloads")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if len(names) != 0 {
		t.Errorf("Expected 0 files, got %d", len(names))
	}
}

func TestSnapshotter_Snapshot_NonExistentDir(t *testing.T) {
	_, err := NewSnapshotter(afero.NewMemMapFs()).Snapshot("/non/existent/directory")
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}
