package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-md/inkwell/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")

	err := fsutil.WriteAtomic(context.Background(), path, []byte("<p>hi</p>\n"), 0)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())

	// No temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.html")
	err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "page.html")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("v1"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("v1"), 0)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("v2"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(content))
}

func TestCopyTree(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "main.css"), []byte("body{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "favicon.ico"), []byte("icon"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".hidden"), []byte("no"), 0644))

	written, err := fsutil.CopyTree(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	content, err := os.ReadFile(filepath.Join(dst, "css", "main.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(content))

	_, err = os.Stat(filepath.Join(dst, ".hidden"))
	assert.True(t, os.IsNotExist(err))

	// Second copy is a no-op.
	written, err = fsutil.CopyTree(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, fsutil.EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
