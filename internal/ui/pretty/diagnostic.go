package pretty

import (
	"fmt"
	"strings"

	"github.com/inkwell-md/inkwell/pkg/scan"
)

// FormatRenderError formats a render error for terminal output. If the
// error carries a source location, it is shown as path:line:col, optionally
// followed by the offending source line with a caret under the column.
func (s *Styles) FormatRenderError(err error, sourceLine string) string {
	var builder strings.Builder

	severity := s.Error.Render("error")

	scanErr, ok := scan.AsError(err)
	if !ok {
		builder.WriteString(fmt.Sprintf("  %s  %s\n", severity, s.Message.Render(err.Error())))
		return builder.String()
	}

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(scanErr.File),
		scanErr.Line,
		scanErr.Column,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(scanErr.Msg),
	))

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, scanErr.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render(path)
}
