// Package cli provides the Cobra command structure for inkwell.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/logging"
	"github.com/inkwell-md/inkwell/pkg/site"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root inkwell command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "A static blog generator with math and code highlighting",
		Long: `inkwell turns a directory of Markdown posts into a static blog.

Posts carry YAML front matter and are rendered through a single-pass
Markdown engine with TeX math (as MathML) and source code highlighting
built in. The output is plain HTML: no client-side JavaScript is needed
to display formulas or highlighted code.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", site.DefaultConfigFile, "path to site config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newPostsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
