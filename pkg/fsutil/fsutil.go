// Package fsutil provides file system primitives for the site build:
// atomic output writes, directory preparation, and static asset copying.
package fsutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirMode is the permission mode for directories created during a build.
const DefaultDirMode os.FileMode = 0755

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// CopyTree copies every regular file under src into dst, preserving the
// relative layout. Files are written atomically and only when their content
// changed, so repeated builds leave untouched assets alone. Hidden entries
// (dot-prefixed) are skipped. Returns the number of files written.
func CopyTree(ctx context.Context, src, dst string) (int, error) {
	written := 0

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != src {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if err := EnsureDir(filepath.Dir(target)); err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		changed, err := WriteAtomicIfChanged(ctx, target, content, 0)
		if err != nil {
			return err
		}
		if changed {
			written++
		}
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy %s: %w", src, err)
	}
	return written, nil
}
