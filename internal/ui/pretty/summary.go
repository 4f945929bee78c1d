package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/inkwell-md/inkwell/pkg/site"
)

const (
	wordPage  = "page"
	wordPages = "pages"
)

// FormatBuildSummary formats build statistics as a single line.
// Example: "2 posts, 3 pages written, 1 asset copied in 14ms".
func (s *Styles) FormatBuildSummary(stats *site.Stats, elapsed time.Duration) string {
	if stats.PagesWritten == 0 && stats.AssetsWritten == 0 {
		return s.Success.Render("Site up to date") +
			s.Dim.Render(fmt.Sprintf(" (%d posts, %s)", stats.Posts, formatDuration(elapsed))) + "\n"
	}

	pageWord := wordPages
	if stats.PagesWritten == 1 {
		pageWord = wordPage
	}

	parts := []string{
		fmt.Sprintf("%d posts", stats.Posts),
		s.Success.Render(fmt.Sprintf("%d %s written", stats.PagesWritten, pageWord)),
	}
	if stats.AssetsWritten > 0 {
		assetWord := "assets"
		if stats.AssetsWritten == 1 {
			assetWord = "asset"
		}
		parts = append(parts, fmt.Sprintf("%d %s copied", stats.AssetsWritten, assetWord))
	}

	return strings.Join(parts, ", ") + s.Dim.Render(" in "+formatDuration(elapsed)) + "\n"
}

// formatDuration rounds a duration to a human-friendly precision.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
