// Package frontmatter parses the YAML metadata block at the top of a post.
//
// A post begins with a delimiter line, followed by key/value metadata,
// followed by a closing delimiter line:
//
//	---
//	title: On Lexical Scope
//	date: 2024-03-01
//	---
//
// Everything after the closing delimiter is the Markdown body.
package frontmatter

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateFormat is the required layout for the date field.
const DateFormat = "2006-01-02"

var delimiter = []byte("---\n")

// Metadata holds the fields recognized in a post's front matter.
// Unknown keys are ignored.
type Metadata struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Category string `yaml:"category"`
	Date     string `yaml:"date"`
}

// Time parses the date field. Call Validate first; Time panics on a
// malformed date.
func (m Metadata) Time() time.Time {
	t, err := time.Parse(DateFormat, m.Date)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that the fields required to publish a post are present
// and well formed. name is used in error messages.
func (m Metadata) Validate(name string) error {
	if m.Title == "" {
		return fmt.Errorf("%s: front matter missing title", name)
	}
	if m.Date == "" {
		return fmt.Errorf("%s: front matter missing date", name)
	}
	if _, err := time.Parse(DateFormat, m.Date); err != nil {
		return fmt.Errorf("%s: front matter date %q is not YYYY-MM-DD", name, m.Date)
	}
	return nil
}

// Split separates a post's front matter from its body. If src does not
// begin with a delimiter line, the whole input is returned as the body
// with zero Metadata. name is used in error messages.
func Split(name string, src []byte) (Metadata, []byte, error) {
	var meta Metadata

	if !bytes.HasPrefix(src, delimiter) {
		return meta, src, nil
	}

	rest := src[len(delimiter):]
	end := closingDelimiter(rest)
	if end < 0 {
		return meta, nil, fmt.Errorf("%s: unterminated front matter", name)
	}

	block := rest[:end]
	body := rest[end+len(delimiter):]

	if err := yaml.Unmarshal(block, &meta); err != nil {
		return meta, nil, fmt.Errorf("%s: parse front matter: %w", name, err)
	}
	return meta, body, nil
}

// closingDelimiter returns the offset in src of the closing delimiter
// line, or -1 if there is none. The delimiter must start a line.
func closingDelimiter(src []byte) int {
	if bytes.HasPrefix(src, delimiter) {
		return 0
	}
	i := bytes.Index(src, append([]byte("\n"), delimiter...))
	if i < 0 {
		return -1
	}
	return i + 1
}
