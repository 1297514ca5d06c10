package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// Real FS Tests
//
// Only our helpers are tested here, not the os passthroughs:
//   - Exists()
//   - WriteFileAtomic()
// =============================================================================

// -----------------------------------------------------------------------------
// Exists() Tests
// -----------------------------------------------------------------------------

func TestReal_Exists(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")

	if err := os.WriteFile(file, []byte("hello"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	for _, tt := range []struct {
		path string
		want bool
	}{
		{path: file, want: true},
		{path: dir, want: true},
		{path: filepath.Join(dir, "does-not-exist.txt"), want: false},
		{path: filepath.Join(dir, "missing", "nested.txt"), want: false},
	} {
		exists, err := fs.Exists(tt.path)
		if err != nil {
			t.Fatalf("Exists(%s): err=%v", tt.path, err)
		}

		if got, want := exists, tt.want; got != want {
			t.Errorf("Exists(%s)=%v, want=%v", tt.path, got, want)
		}
	}
}

// TestReal_Exists_ReturnsErrorThroughFile verifies that a path below a
// regular file is an error, not "does not exist".
func TestReal_Exists_ReturnsErrorThroughFile(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	file := filepath.Join(t.TempDir(), "file.txt")

	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := fs.Exists(filepath.Join(file, "child"))
	if err == nil {
		t.Fatalf("Exists: err=nil, exists=%v", exists)
	}
}

// -----------------------------------------------------------------------------
// WriteFileAtomic() Tests
// -----------------------------------------------------------------------------

func TestReal_WriteFileAtomic_Creates_File_With_Perm(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	path := filepath.Join(t.TempDir(), "new.json")

	if err := fs.WriteFileAtomic(path, []byte("[]\n"), 0o640); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(got) != "[]\n" {
		t.Errorf("content=%q, want=%q", got, "[]\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o640); got != want {
		t.Errorf("perm=%v, want=%v", got, want)
	}
}

func TestReal_WriteFileAtomic_Replaces_And_Keeps_Mode(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	dir := t.TempDir()
	path := filepath.Join(dir, "todo.json")

	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// work around umask so the expected mode is exact
	if err := os.Chmod(path, 0o644); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if err := fs.WriteFileAtomic(path, []byte("new"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(got) != "new" {
		t.Errorf("content=%q, want=%q", got, "new")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o644); got != want {
		t.Errorf("perm=%v, want=%v", got, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}

	if got, want := len(entries), 1; got != want {
		t.Errorf("entries=%d, want=%d (temp file left behind?)", got, want)
	}
}

func TestReal_WriteFileAtomic_Missing_Directory(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	path := filepath.Join(t.TempDir(), "missing", "todo.json")

	if err := fs.WriteFileAtomic(path, []byte("[]"), 0o600); err == nil {
		t.Fatal("WriteFileAtomic: err=nil, want error")
	}
}

func TestReal_WriteFileAtomic_Succeeds_When_Chmod_Fails_After_Replace(t *testing.T) {
	t.Parallel()

	fs := &Real{chmod: func(string, os.FileMode) error { return errors.New("chmod refused") }}
	path := filepath.Join(t.TempDir(), "new.json")

	if err := fs.WriteFileAtomic(path, []byte("[]\n"), 0o640); err != nil {
		t.Fatalf("WriteFileAtomic: err=%v, want nil once content is in place", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(got) != "[]\n" {
		t.Errorf("content=%q, want=%q", got, "[]\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
		t.Errorf("perm=%v, want=%v", got, want)
	}
}
