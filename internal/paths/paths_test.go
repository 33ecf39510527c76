package paths

import (
	"path/filepath"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	root := t.TempDir()

	abs := filepath.Join(root, "locales", "en.json")
	got, err := Canonicalize(abs, root)
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if got != "locales/en.json" {
		t.Errorf("Canonicalize() = %q, want %q", got, "locales/en.json")
	}
}

func TestCanonicalizeOutsideRoot(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()

	got, err := Canonicalize(filepath.Join(other, "en.json"), root)
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if !filepath.IsAbs(got) && got[:2] != ".." {
		t.Errorf("Canonicalize() = %q, expected path escaping root", got)
	}
}

func TestIsWithinWorkspace(t *testing.T) {
	root := t.TempDir()

	if !IsWithinWorkspace(filepath.Join(root, "locales", "de.yaml"), root) {
		t.Error("path inside root should be within workspace")
	}
	if IsWithinWorkspace(filepath.Join(root, "..", "elsewhere"), root) {
		t.Error("path outside root should not be within workspace")
	}
}

func TestNormalize(t *testing.T) {
	// Must rewrite backslashes regardless of the host separator.
	if got := Normalize(`locales\en.json`); got != "locales/en.json" {
		t.Errorf("Normalize() = %q", got)
	}
	if got := Normalize(`locales\nav/en.json`); got != "locales/nav/en.json" {
		t.Errorf("Normalize() = %q", got)
	}
	if got := Normalize("locales/en.json"); got != "locales/en.json" {
		t.Errorf("Normalize() = %q, want unchanged", got)
	}
}

func TestJoin(t *testing.T) {
	got := Join("/ws", "locales/en.json")
	want := filepath.Join("/ws", "locales", "en.json")
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestStateDir(t *testing.T) {
	root := t.TempDir()
	dir, err := EnsureStateDir(root)
	if err != nil {
		t.Fatalf("EnsureStateDir() error = %v", err)
	}
	if dir != filepath.Join(root, WorkspaceDir) {
		t.Errorf("EnsureStateDir() = %q", dir)
	}
}
