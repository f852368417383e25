package fsutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwellmd/inkwell/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	if err := fsutil.WriteAtomic(path, []byte("content"), 0); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "content" {
		t.Fatalf("got %q", got)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Mode().Perm() != fsutil.DefaultFileMode {
		t.Fatalf("mode = %v", stat.Mode().Perm())
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, found %d", len(entries))
	}
}

func TestWriteAtomic_Overwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	if err := fsutil.WriteAtomic(path, []byte("old"), 0); err != nil {
		t.Fatal(err)
	}
	if err := fsutil.WriteAtomic(path, []byte("new"), 0); err != nil {
		t.Fatal(err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")

	wrote, err := fsutil.WriteAtomicIfChanged(path, []byte("v1"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Fatal("first write should report written")
	}

	wrote, err = fsutil.WriteAtomicIfChanged(path, []byte("v1"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if wrote {
		t.Fatal("identical content should not rewrite")
	}

	wrote, err = fsutil.WriteAtomicIfChanged(path, []byte("v2"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Fatal("changed content should rewrite")
	}
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := fsutil.EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	stat, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !stat.IsDir() {
		t.Fatal("not a directory")
	}

	// Idempotent.
	if err := fsutil.EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverMarkdown(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	files := []string{
		"index.md",
		"guide/install.md",
		"guide/usage.markdown",
		"notes.txt",
		".hidden/skipped.md",
		"assets/logo.png",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := fsutil.DiscoverMarkdown(root)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join("guide", "install.md"),
		filepath.Join("guide", "usage.markdown"),
		"index.md",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDiscoverMarkdown_Errors(t *testing.T) {
	t.Parallel()

	if _, err := fsutil.DiscoverMarkdown(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, fsutil.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "file.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := fsutil.DiscoverMarkdown(file); !errors.Is(err, fsutil.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"a.md":       true,
		"a.MD":       true,
		"b.markdown": true,
		"c.txt":      false,
		"d":          false,
	} {
		if got := fsutil.IsMarkdown(path); got != want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", path, got, want)
		}
	}
}
