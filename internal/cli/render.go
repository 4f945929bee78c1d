package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/ui/pretty"
	"github.com/inkwell-md/inkwell/pkg/frontmatter"
	"github.com/inkwell-md/inkwell/pkg/markdown"
	"github.com/inkwell-md/inkwell/pkg/scan"
)

// newStderrStyles builds styles for diagnostics written to stderr.
func newStderrStyles(colorMode string) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stderr))
}

func newRenderCommand() *cobra.Command {
	var inline bool
	var excerpt bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a single Markdown file to HTML",
		Long: `Render one Markdown file to HTML on stdout, without the page template.
Front matter, if present, is stripped. Use "-" to read from stdin.

Examples:
  inkwell render posts/hello.md        # Render a post body
  inkwell render --excerpt posts/a.md  # Render only the first block
  cat note.md | inkwell render -       # Render stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], inline, excerpt)
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "render inline content only, without block structure")
	cmd.Flags().BoolVar(&excerpt, "excerpt", false, "render only the first block")

	return cmd
}

func runRender(cmd *cobra.Command, path string, inline, excerpt bool) error {
	var src []byte
	var err error
	name := path
	if path == "-" {
		name = "<stdin>"
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	_, body, err := frontmatter.Split(name, src)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	opts := markdown.Options{Inline: inline, FirstBlockOnly: excerpt}
	if err := markdown.Render(name, body, &out, nil, opts); err != nil {
		colorMode, _ := cmd.Flags().GetString("color")
		styles := newStderrStyles(colorMode)
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatRenderError(err, diagnosticLine(body, err)))
		return ErrBuildFailed
	}
	out.WriteByte('\n')

	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

// diagnosticLine extracts the source line an error points at, for caret
// display. Lines are counted in the body, after front matter removal.
func diagnosticLine(body []byte, err error) string {
	scanErr, ok := scan.AsError(err)
	if !ok {
		return ""
	}
	lines := strings.Split(string(body), "\n")
	if scanErr.Line < 1 || scanErr.Line > len(lines) {
		return ""
	}
	return lines[scanErr.Line-1]
}
