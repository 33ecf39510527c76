package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceDir is the name of the per-workspace state directory.
const WorkspaceDir = ".lokey"

// Canonicalize converts an absolute path to a workspace-relative canonical path.
// Symlinks are resolved, the path is made relative to the workspace root, and
// separators are normalized to forward slashes.
func Canonicalize(absolutePath string, root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(absolutePath)
	if err != nil {
		// A file scheduled for creation doesn't exist yet; keep the raw path.
		if os.IsNotExist(err) {
			resolved = absolutePath
		} else {
			return "", err
		}
	}

	rootResolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		if os.IsNotExist(err) {
			rootResolved = root
		} else {
			return "", err
		}
	}

	rel, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// IsWithinWorkspace checks if a path is inside the workspace root.
func IsWithinWorkspace(path string, root string) bool {
	canonical, err := Canonicalize(path, root)
	if err != nil {
		return false
	}
	return !strings.HasPrefix(canonical, "..")
}

// Normalize converts backslashes to forward slashes in an already-relative
// path. Unlike filepath.ToSlash this also rewrites backslashes on systems
// whose separator is already the forward slash, so canonical paths stored
// on one platform stay usable on another.
func Normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Join joins a workspace root with a canonical forward-slash path using
// the OS-specific separator.
func Join(root string, canonicalPath string) string {
	parts := strings.Split(Normalize(canonicalPath), "/")
	return filepath.Join(append([]string{root}, parts...)...)
}

// StateDir returns the workspace state directory (<root>/.lokey).
func StateDir(root string) string {
	return filepath.Join(root, WorkspaceDir)
}

// EnsureStateDir creates the workspace state directory if needed.
func EnsureStateDir(root string) (string, error) {
	dir := StateDir(root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// LogPath returns the path of the watch-mode log file.
func LogPath(root string) string {
	return filepath.Join(StateDir(root), "lokey.log")
}
