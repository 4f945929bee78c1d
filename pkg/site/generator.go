package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/inkwell-md/inkwell/pkg/fsutil"
)

// Stats summarizes what a build did.
type Stats struct {
	// Posts is the number of posts loaded.
	Posts int

	// PagesWritten counts pages whose content changed on disk.
	PagesWritten int

	// AssetsWritten counts static files copied because they changed.
	AssetsWritten int
}

// Generator builds a site from its config.
type Generator struct {
	cfg  *Config
	tmpl *template.Template
}

// New creates a Generator, loading the site's templates.
func New(cfg *Config) (*Generator, error) {
	tmpl, err := loadTemplates(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, tmpl: tmpl}, nil
}

// Generate builds the whole site into cfg.OutDir: one page per post, the
// index page, the JSON post index, and the static assets.
func (g *Generator) Generate(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	posts, err := LoadPosts(g.cfg.PostsDir)
	if err != nil {
		return nil, err
	}
	stats.Posts = len(posts)

	for _, post := range posts {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generate: %w", ctx.Err())
		default:
		}
		written, err := g.writePost(ctx, post)
		if err != nil {
			return nil, err
		}
		if written {
			stats.PagesWritten++
		}
	}

	written, err := g.writeIndex(ctx, posts)
	if err != nil {
		return nil, err
	}
	if written {
		stats.PagesWritten++
	}

	index, err := MarshalIndex(posts)
	if err != nil {
		return nil, err
	}
	indexPath := filepath.Join(g.cfg.OutDir, "posts", "index.json")
	if err := fsutil.EnsureDir(filepath.Dir(indexPath)); err != nil {
		return nil, err
	}
	written, err = fsutil.WriteAtomicIfChanged(ctx, indexPath, index, 0)
	if err != nil {
		return nil, err
	}
	if written {
		stats.PagesWritten++
	}

	if _, err := os.Stat(g.cfg.StaticDir); err == nil {
		copied, err := fsutil.CopyTree(ctx, g.cfg.StaticDir, g.cfg.OutDir)
		if err != nil {
			return nil, err
		}
		stats.AssetsWritten = copied
	}

	return stats, nil
}

func (g *Generator) writePost(ctx context.Context, post *Post) (bool, error) {
	var page bytes.Buffer
	data := postPage{
		Site:    g.cfg,
		Post:    post,
		Content: template.HTML(post.HTML),
	}
	if err := g.tmpl.ExecuteTemplate(&page, postTemplate, data); err != nil {
		return false, fmt.Errorf("render %s: %w", post.Slug, err)
	}

	dir := filepath.Join(g.cfg.OutDir, "posts", post.Slug)
	if err := fsutil.EnsureDir(dir); err != nil {
		return false, err
	}
	return fsutil.WriteAtomicIfChanged(ctx, filepath.Join(dir, "index.html"), page.Bytes(), 0)
}

func (g *Generator) writeIndex(ctx context.Context, posts []*Post) (bool, error) {
	data := indexPage{Site: g.cfg}
	for _, post := range posts {
		data.Posts = append(data.Posts, indexPost{
			Post:    post,
			Excerpt: template.HTML(post.Excerpt),
		})
	}

	var page bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&page, indexTemplate, data); err != nil {
		return false, fmt.Errorf("render index: %w", err)
	}

	if err := fsutil.EnsureDir(g.cfg.OutDir); err != nil {
		return false, err
	}
	return fsutil.WriteAtomicIfChanged(ctx, filepath.Join(g.cfg.OutDir, "index.html"), page.Bytes(), 0)
}
