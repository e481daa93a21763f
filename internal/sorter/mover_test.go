package sorter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/internal"
)

func TestMover_Move_CreatesDestination(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/dl/a.png", "png data")

	m := NewMover(fs, zerolog.Nop())
	outcome := m.Move("a.png", "/dl", "/dl/Pictures/Downloads")

	if !outcome.Moved {
		t.Fatalf("Move() failed: %v", outcome.Err)
	}
	if outcome.FinalName != "a.png" {
		t.Errorf("FinalName = %q, want a.png", outcome.FinalName)
	}
	if outcome.Kind != "" || outcome.Err != nil {
		t.Errorf("successful move should carry no error, got %q %v", outcome.Kind, outcome.Err)
	}

	assertMissing(t, fs, "/dl/a.png")
	if got := readFile(t, fs, "/dl/Pictures/Downloads/a.png"); got != "png data" {
		t.Errorf("moved content = %q", got)
	}
}

func TestMover_Move_NeverOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/dl/report.txt", "new")
	writeFile(t, fs, "/dl/Documents/report.txt", "original")
	writeFile(t, fs, "/dl/Documents/report_1.txt", "first copy")

	outcome := NewMover(fs, zerolog.Nop()).Move("report.txt", "/dl", "/dl/Documents")

	if !outcome.Moved {
		t.Fatalf("Move() failed: %v", outcome.Err)
	}
	if outcome.FinalName != "report_2.txt" {
		t.Errorf("FinalName = %q, want report_2.txt", outcome.FinalName)
	}

	if got := readFile(t, fs, "/dl/Documents/report.txt"); got != "original" {
		t.Errorf("original occupant modified: %q", got)
	}
	if got := readFile(t, fs, "/dl/Documents/report_1.txt"); got != "first copy" {
		t.Errorf("report_1.txt modified: %q", got)
	}
	if got := readFile(t, fs, "/dl/Documents/report_2.txt"); got != "new" {
		t.Errorf("report_2.txt = %q, want new", got)
	}
	assertMissing(t, fs, "/dl/report.txt")
}

func TestMover_Move_SourceVanished(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/dl", 0755); err != nil {
		t.Fatal(err)
	}

	outcome := NewMover(fs, zerolog.Nop()).Move("gone.pdf", "/dl", "/dl/Documents")

	if outcome.Moved {
		t.Fatal("expected move to fail")
	}
	if outcome.Kind != internal.KindSourceVanished {
		t.Errorf("Kind = %q, want %q", outcome.Kind, internal.KindSourceVanished)
	}
	if !internal.IsKind(outcome.Err, internal.KindSourceVanished) {
		t.Errorf("Err should be a source vanished OpError, got %v", outcome.Err)
	}
}

func TestMover_Move_DestinationBlockedByFile(t *testing.T) {
	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	src := filepath.Join(tempDir, "a.png")
	blocker := filepath.Join(tempDir, "Images")
	writeFile(t, fs, src, "png")
	writeFile(t, fs, blocker, "i am a file")

	testCases := []struct {
		name string
		dest string
	}{
		{"destination is a file", blocker},
		{"parent is a file", filepath.Join(blocker, "Screenshots")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := NewMover(fs, zerolog.Nop()).Move("a.png", tempDir, tc.dest)

			if outcome.Moved {
				t.Fatal("expected move to fail")
			}
			if outcome.Kind != internal.KindDestinationUnavailable {
				t.Errorf("Kind = %q, want %q (err: %v)", outcome.Kind, internal.KindDestinationUnavailable, outcome.Err)
			}
			if got := readFile(t, fs, src); got != "png" {
				t.Errorf("source must stay untouched, got %q", got)
			}
			if got := readFile(t, fs, blocker); got != "i am a file" {
				t.Errorf("blocker must stay untouched, got %q", got)
			}
		})
	}
}

func TestMover_Move_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root 不受目录权限限制")
	}

	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	src := filepath.Join(tempDir, "a.pdf")
	dest := filepath.Join(tempDir, "Documents")
	writeFile(t, fs, src, "pdf")
	if err := os.Mkdir(dest, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dest, 0755) })

	outcome := NewMover(fs, zerolog.Nop()).Move("a.pdf", tempDir, dest)

	if outcome.Moved {
		t.Fatal("expected move to fail")
	}
	if outcome.Kind != internal.KindMoveFailed {
		t.Errorf("Kind = %q, want %q", outcome.Kind, internal.KindMoveFailed)
	}
	if got := readFile(t, fs, src); got != "pdf" {
		t.Errorf("source must stay untouched, got %q", got)
	}
}
