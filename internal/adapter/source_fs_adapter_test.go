package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "FooDialog.tsx")
	content := "import { Dialog } from '@/components/ui/dialog';\n" + "export const FooDialog = () => null;\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "FooDialog.tsx")
	content := []byte("export const FooDialog = () => null;\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}

	if _, err := adapter.HashFile(context.Background(), m.Path(filepath.Join(root, "missing.tsx"))); err == nil {
		t.Fatalf("HashFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "FooDialog.tsx")
	writeTestFile(t, path, "export const FooDialog = () => null;\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.Mode().IsRegular() {
		t.Fatalf("FileInfo() reported file as non-regular")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}

	_, err = adapter.FileInfo(context.Background(), m.Path(filepath.Join(root, "missing.tsx")))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("FileInfo() error = %v, want os.ErrNotExist", err)
	}
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	dir := filepath.Join(root, "components")
	mustMkdir(t, dir)

	path := filepath.Join(dir, "FooDialog.tsx")
	writeTestFile(t, path, "old\n")

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("new\n"), 0o640); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(got) != "new\n" {
		t.Fatalf("WriteFile() wrote %q, want %q", string(got), "new\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if info.Mode().Perm() != 0o640 {
		t.Fatalf("WriteFile() perm = %v, want %v", info.Mode().Perm(), os.FileMode(0o640))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	if len(names) != 1 || !containsPath(names, "FooDialog.tsx") {
		t.Fatalf("WriteFile() left temp files behind: %v", names)
	}
}

func TestLocalSourceFSAdapter_WriteFileThroughSymlink(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	realDir := filepath.Join(root, "shared")
	linkDir := filepath.Join(root, "app")
	mustMkdir(t, realDir)
	mustMkdir(t, linkDir)

	targetFile := filepath.Join(realDir, "FooDialog.tsx")
	writeTestFile(t, targetFile, "old\n")

	link := filepath.Join(linkDir, "FooDialog.tsx")
	if err := os.Symlink(targetFile, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := adapter.WriteFile(context.Background(), m.Path(link), []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("lstat: %v", err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("WriteFile() replaced the symlink with a regular file")
	}

	got, err := os.ReadFile(targetFile)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(got) != "new\n" {
		t.Fatalf("WriteFile() wrote %q to the link target, want %q", string(got), "new\n")
	}

	entries, err := os.ReadDir(linkDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFile() left extra entries next to the link: %d", len(entries))
	}
}

func TestLocalSourceFSAdapter_WriteFileMissingDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "missing", "FooDialog.tsx")

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("x"), 0o644); err == nil {
		t.Fatalf("WriteFile() expected error for missing directory")
	}
}

func TestLocalSourceFSAdapter_CancelledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := m.Path(filepath.Join(root, "FooDialog.tsx"))
	writeTestFile(t, string(path), "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adapter.ReadFile(ctx, path); !errors.Is(err, context.Canceled) {
		t.Fatalf("ReadFile() error = %v, want context.Canceled", err)
	}

	if err := adapter.WriteFile(ctx, path, []byte("y"), 0o644); !errors.Is(err, context.Canceled) {
		t.Fatalf("WriteFile() error = %v, want context.Canceled", err)
	}

	got, _ := os.ReadFile(string(path))
	if string(got) != "x" {
		t.Fatalf("cancelled WriteFile() modified the file: %q", string(got))
	}
}

func TestLocalSourceFSAdapter_ResolvePath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	abs := filepath.Join(t.TempDir(), "FooDialog.tsx")

	tests := []struct {
		name string
		root m.Path
		path m.Path
		want m.Path
	}{
		{"relative joined", "web", "src/FooDialog.tsx", m.Path(filepath.Join("web", "src", "FooDialog.tsx"))},
		{"absolute kept", "web", m.Path(abs), m.Path(abs)},
		{"empty root", "", "./src/../src/FooDialog.tsx", m.Path(filepath.Join("src", "FooDialog.tsx"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ResolvePath(ctx, tt.root, tt.path); got != tt.want {
				t.Fatalf("ResolvePath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if strings.HasSuffix(p, target) {
			return true
		}
	}

	return false
}
