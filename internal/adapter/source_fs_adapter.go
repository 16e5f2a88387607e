// Package adapter contains infrastructure adapters for the hocwrap CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when rewriting user sources. It hides direct `os` access so the
// batch logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence
	// and preserve permissions on write.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the whole content of path. Implementations must not
	// leave a partially written file behind on failure.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// ResolvePath joins path onto root unless path is already absolute.
	ResolvePath(ctx context.Context, root, path m.Path) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the configured target list
	return os.ReadFile(string(path))
}

// WriteFile writes content to a sibling temp file and renames it over path,
// so readers observe either the old or the new content. A symlinked path is
// resolved first and the link itself is left in place. The owner of an
// existing file is carried over when the process is allowed to.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".hocwrap-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	if info, err := os.Stat(target); err == nil {
		preserveOwner(tmpPath, info)
	}

	return os.Rename(tmpPath, target)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ResolvePath joins path onto root unless path is absolute or root is empty.
func (a *LocalSourceFSAdapter) ResolvePath(_ context.Context, root, path m.Path) m.Path {
	if filepath.IsAbs(string(path)) || root == "" {
		return m.Path(filepath.Clean(string(path)))
	}

	return m.Path(filepath.Join(string(root), string(path)))
}
