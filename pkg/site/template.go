package site

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// Template names the generator looks for under TemplatesDir. Any that are
// missing fall back to the built-in versions below.
const (
	postTemplate  = "post.html"
	indexTemplate = "index.html"
)

const defaultPostTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Post.Meta.Title}} &mdash; {{.Site.Title}}</title>
<link rel="stylesheet" href="/css/main.css">
</head>
<body>
<header><a href="/">{{.Site.Title}}</a></header>
<article>
<h1>{{.Post.Meta.Title}}</h1>
{{if .Post.Meta.Subtitle}}<p class="subtitle">{{.Post.Meta.Subtitle}}</p>
{{end}}<time datetime="{{.Post.Meta.Date}}">{{.Post.Meta.Date}}</time>
{{.Content}}
</article>
</body>
</html>
`

const defaultIndexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Site.Title}}</title>
<link rel="stylesheet" href="/css/main.css">
</head>
<body>
<header>{{.Site.Title}}</header>
<main>
{{range .Posts}}<section>
<h2><a href="{{.Post.URL}}">{{.Post.Meta.Title}}</a></h2>
<time datetime="{{.Post.Meta.Date}}">{{.Post.Meta.Date}}</time>
{{.Excerpt}}
</section>
{{end}}</main>
</body>
</html>
`

// postPage is the data handed to the post template.
type postPage struct {
	Site    *Config
	Post    *Post
	Content template.HTML
}

// indexPost is one entry handed to the index template.
type indexPost struct {
	Post    *Post
	Excerpt template.HTML
}

// indexPage is the data handed to the index template.
type indexPage struct {
	Site  *Config
	Posts []indexPost
}

// loadTemplates parses the site's templates, preferring files in dir over
// the built-in defaults.
func loadTemplates(dir string) (*template.Template, error) {
	root := template.New("site")

	defaults := map[string]string{
		postTemplate:  defaultPostTemplate,
		indexTemplate: defaultIndexTemplate,
	}

	for name, fallback := range defaults {
		text := fallback
		data, err := os.ReadFile(filepath.Join(dir, name))
		switch {
		case err == nil:
			text = string(data)
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}
	return root, nil
}
