package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inkwell-md/inkwell/pkg/frontmatter"
	"github.com/inkwell-md/inkwell/pkg/markdown"
)

// MaxPosts caps the post index size.
const MaxPosts = 100

// Post is a single loaded and rendered post.
type Post struct {
	// Slug is the post's URL component, derived from the source filename.
	Slug string

	// Source is the path of the Markdown file the post came from.
	Source string

	// Meta is the post's front matter.
	Meta frontmatter.Metadata

	// HTML is the rendered body.
	HTML []byte

	// Excerpt is the rendered first block of the body, for index pages.
	Excerpt []byte
}

// URL returns the post's path relative to the site root.
func (p *Post) URL() string {
	return "/posts/" + p.Slug + "/"
}

// LoadPost reads and renders a single post file.
func LoadPost(path string) (*Post, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read post: %w", err)
	}

	name := filepath.Base(path)
	meta, body, err := frontmatter.Split(name, src)
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(name); err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := markdown.Render(name, body, &html, nil, markdown.Options{}); err != nil {
		return nil, err
	}

	var excerpt bytes.Buffer
	if err := markdown.Render(name, body, &excerpt, nil, markdown.Options{FirstBlockOnly: true}); err != nil {
		return nil, err
	}

	return &Post{
		Slug:    strings.TrimSuffix(name, filepath.Ext(name)),
		Source:  path,
		Meta:    meta,
		HTML:    html.Bytes(),
		Excerpt: excerpt.Bytes(),
	}, nil
}

// LoadPosts loads every .md file directly under dir and returns the posts
// sorted by date, newest first. Posts sharing a date sort by slug so the
// order is stable.
func LoadPosts(dir string) ([]*Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read posts directory: %w", err)
	}

	var posts []*Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := LoadPost(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if len(posts) > MaxPosts {
		return nil, fmt.Errorf("%d posts exceeds the maximum of %d", len(posts), MaxPosts)
	}

	// Dates are YYYY-MM-DD, so the lexicographic order is chronological.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Meta.Date != posts[j].Meta.Date {
			return posts[i].Meta.Date > posts[j].Meta.Date
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, nil
}

// IndexEntry is one post's record in the JSON index.
type IndexEntry struct {
	Slug     string `json:"slug"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date"`
}

// IndexEntries converts posts to their index records, preserving order.
func IndexEntries(posts []*Post) []IndexEntry {
	entries := make([]IndexEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, IndexEntry{
			Slug:     p.Slug,
			URL:      p.URL(),
			Title:    p.Meta.Title,
			Subtitle: p.Meta.Subtitle,
			Category: p.Meta.Category,
			Date:     p.Meta.Date,
		})
	}
	return entries
}

// MarshalIndex renders the JSON post index for a slice of posts already
// sorted newest first.
func MarshalIndex(posts []*Post) ([]byte, error) {
	out, err := json.MarshalIndent(IndexEntries(posts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal post index: %w", err)
	}
	return append(out, '\n'), nil
}
