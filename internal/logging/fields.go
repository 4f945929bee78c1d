// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Build fields.
	FieldSite          = "site"
	FieldPosts         = "posts"
	FieldPagesWritten  = "pages_written"
	FieldAssetsWritten = "assets_written"
	FieldDuration      = "duration"

	// Post fields.
	FieldSlug  = "slug"
	FieldTitle = "title"
	FieldDate  = "date"

	// Render fields.
	FieldLine   = "line"
	FieldColumn = "column"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
