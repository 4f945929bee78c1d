package pretty

import (
	"fmt"
	"strings"

	"github.com/inkwell-md/inkwell/pkg/site"
)

// Table formatting constants.
const (
	dateColumnWidth    = 10 // YYYY-MM-DD
	minCategoryWidth   = 8
	minTitleWidth      = 20
	columnGap          = 2
	defaultTermWidth   = 100
	truncationEllipsis = "..."
)

// PostTable formats the post index as a styled table.
type PostTable struct {
	styles    *Styles
	termWidth int
}

// NewPostTable creates a post table formatter. A non-positive termWidth
// falls back to a default width.
func NewPostTable(styles *Styles, termWidth int) *PostTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &PostTable{styles: styles, termWidth: termWidth}
}

// Render formats the entries, newest first, one row per post.
func (t *PostTable) Render(entries []site.IndexEntry) string {
	if len(entries) == 0 {
		return t.styles.Dim.Render("No posts") + "\n"
	}

	categoryWidth := minCategoryWidth
	for _, entry := range entries {
		if len(entry.Category) > categoryWidth {
			categoryWidth = len(entry.Category)
		}
	}

	titleWidth := t.termWidth - dateColumnWidth - categoryWidth - 2*columnGap
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}

	gap := strings.Repeat(" ", columnGap)
	var builder strings.Builder

	header := pad("DATE", dateColumnWidth) + gap +
		pad("CATEGORY", categoryWidth) + gap +
		"TITLE"
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat("-", dateColumnWidth+categoryWidth+titleWidth+2*columnGap)) + "\n")

	for _, entry := range entries {
		builder.WriteString(fmt.Sprintf("%s%s%s%s%s\n",
			t.styles.Dim.Render(pad(entry.Date, dateColumnWidth)),
			gap,
			pad(entry.Category, categoryWidth),
			gap,
			t.styles.Bold.Render(truncate(entry.Title, titleWidth)),
		))
	}

	return builder.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= len(truncationEllipsis) {
		return s[:width]
	}
	return s[:width-len(truncationEllipsis)] + truncationEllipsis
}
