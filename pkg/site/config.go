// Package site builds a static blog: it renders Markdown posts through the
// templates, writes the post index, and copies static assets into the
// output directory.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config filename looked for in the site root.
const DefaultConfigFile = "inkwell.yaml"

// Config describes a site. All paths are relative to the site root unless
// absolute.
type Config struct {
	// Title is the site title, shown in page headers.
	Title string `yaml:"title"`

	// Author is the default post author.
	Author string `yaml:"author"`

	// BaseURL is the absolute URL the site is served from, without a
	// trailing slash.
	BaseURL string `yaml:"base_url"`

	// PostsDir is where Markdown posts live.
	PostsDir string `yaml:"posts_dir"`

	// TemplatesDir holds the HTML page templates. Built-in templates are
	// used for any that are missing.
	TemplatesDir string `yaml:"templates_dir"`

	// StaticDir holds assets copied verbatim into the output.
	StaticDir string `yaml:"static_dir"`

	// OutDir is where the generated site is written.
	OutDir string `yaml:"out_dir"`
}

// DefaultConfig returns a Config with the conventional directory layout.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Untitled Site",
		PostsDir:     "posts",
		TemplatesDir: "templates",
		StaticDir:    "static",
		OutDir:       "public",
	}
}

// LoadConfig reads a site config file and fills in defaults for any
// unset fields. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.PostsDir == "" {
		cfg.PostsDir = "posts"
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "public"
	}
	return cfg, nil
}
