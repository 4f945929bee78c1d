package site_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-md/inkwell/pkg/site"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func siteFixture(t *testing.T) *site.Config {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "posts", "first-post.md"),
		"---\ntitle: First\ndate: 2024-01-02\n---\nHello _world_.\n\nMore text.\n")
	writeFile(t, filepath.Join(root, "posts", "second-post.md"),
		"---\ntitle: Second\nsubtitle: A follow-up\ndate: 2024-03-04\n---\nAnother post.\n")
	writeFile(t, filepath.Join(root, "static", "css", "main.css"), "body{}")

	cfg := site.DefaultConfig()
	cfg.Title = "Test Site"
	cfg.PostsDir = filepath.Join(root, "posts")
	cfg.StaticDir = filepath.Join(root, "static")
	cfg.TemplatesDir = filepath.Join(root, "templates")
	cfg.OutDir = filepath.Join(root, "public")
	return cfg
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := site.LoadConfig(filepath.Join(t.TempDir(), site.DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, "posts", cfg.PostsDir)
	assert.Equal(t, "public", cfg.OutDir)
	assert.Equal(t, "static", cfg.StaticDir)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	writeFile(t, path, "title: My Blog\nbase_url: https://example.com\nout_dir: dist\n")

	cfg, err := site.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "My Blog", cfg.Title)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "dist", cfg.OutDir)
	assert.Equal(t, "posts", cfg.PostsDir)
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	writeFile(t, path, "title: [\n")

	_, err := site.LoadConfig(path)
	require.Error(t, err)
}

func TestLoadPost(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scope.md")
	writeFile(t, path, "---\ntitle: On Scope\ndate: 2024-03-01\n---\nA _small_ post.\n\nSecond block.\n")

	post, err := site.LoadPost(path)
	require.NoError(t, err)

	assert.Equal(t, "scope", post.Slug)
	assert.Equal(t, "/posts/scope/", post.URL())
	assert.Equal(t, "On Scope", post.Meta.Title)
	assert.Equal(t, "<p>A <em>small</em> post.</p>\n<p>Second block.</p>", string(post.HTML))
	assert.Equal(t, "<p>A <em>small</em> post.</p>", string(post.Excerpt))
}

func TestLoadPostMissingFrontMatter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bare.md")
	writeFile(t, path, "No metadata here.\n")

	_, err := site.LoadPost(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing title")
}

func TestLoadPostsSortedNewestFirst(t *testing.T) {
	t.Parallel()

	cfg := siteFixture(t)
	posts, err := site.LoadPosts(cfg.PostsDir)
	require.NoError(t, err)

	require.Len(t, posts, 2)
	assert.Equal(t, "second-post", posts[0].Slug)
	assert.Equal(t, "first-post", posts[1].Slug)
}

func TestMarshalIndex(t *testing.T) {
	t.Parallel()

	cfg := siteFixture(t)
	posts, err := site.LoadPosts(cfg.PostsDir)
	require.NoError(t, err)

	out, err := site.MarshalIndex(posts)
	require.NoError(t, err)

	var entries []site.IndexEntry
	require.NoError(t, json.Unmarshal(out, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Second", entries[0].Title)
	assert.Equal(t, "A follow-up", entries[0].Subtitle)
	assert.Equal(t, "2024-03-04", entries[0].Date)
	assert.Equal(t, "/posts/second-post/", entries[0].URL)
	assert.Equal(t, "First", entries[1].Title)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	cfg := siteFixture(t)
	gen, err := site.New(cfg)
	require.NoError(t, err)

	stats, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Posts)
	// Two post pages, the index page, and the JSON index.
	assert.Equal(t, 4, stats.PagesWritten)
	assert.Equal(t, 1, stats.AssetsWritten)

	page, err := os.ReadFile(filepath.Join(cfg.OutDir, "posts", "first-post", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>First</h1>")
	assert.Contains(t, string(page), "<p>Hello <em>world</em>.</p>")
	assert.Contains(t, string(page), "Test Site")

	index, err := os.ReadFile(filepath.Join(cfg.OutDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/posts/second-post/"`)
	assert.Contains(t, string(index), "<p>Another post.</p>")

	_, err = os.Stat(filepath.Join(cfg.OutDir, "css", "main.css"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.OutDir, "posts", "index.json"))
	assert.NoError(t, err)
}

func TestGenerateIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := siteFixture(t)
	gen, err := site.New(cfg)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	stats, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Posts)
	assert.Zero(t, stats.PagesWritten)
	assert.Zero(t, stats.AssetsWritten)
}

func TestGenerateCustomTemplate(t *testing.T) {
	t.Parallel()

	cfg := siteFixture(t)
	writeFile(t, filepath.Join(cfg.TemplatesDir, "post.html"),
		"<main data-slug=\"{{.Post.Slug}}\">{{.Content}}</main>\n")

	gen, err := site.New(cfg)
	require.NoError(t, err)
	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(cfg.OutDir, "posts", "second-post", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `<main data-slug="second-post">`)
	assert.Contains(t, string(page), "<p>Another post.</p>")
}

func TestGenerateCanceled(t *testing.T) {
	t.Parallel()

	cfg := siteFixture(t)
	gen, err := site.New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Generate(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
