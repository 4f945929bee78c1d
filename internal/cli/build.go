package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/logging"
	"github.com/inkwell-md/inkwell/internal/ui/pretty"
	"github.com/inkwell-md/inkwell/pkg/site"
)

// ErrBuildFailed is returned when the site could not be built. The
// diagnostic has already been printed when this is returned.
var ErrBuildFailed = errors.New("build failed")

func newBuildCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Long: `Build the whole site: render every post, write the index page and
the JSON post index, and copy static assets. Output files are written
atomically and only when their content changed.

Examples:
  inkwell build                  # Build using inkwell.yaml
  inkwell build --out /tmp/site  # Override the output directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")

	return cmd
}

func runBuild(cmd *cobra.Command, outDir string) error {
	logger := logging.Default()

	cfg, styles, err := loadSite(cmd)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}

	gen, err := site.New(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	stats, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatRenderError(err, ""))
		return ErrBuildFailed
	}

	logger.Debug("build finished",
		logging.FieldPosts, stats.Posts,
		logging.FieldPagesWritten, stats.PagesWritten,
		logging.FieldAssetsWritten, stats.AssetsWritten,
		logging.FieldOutput, cfg.OutDir,
	)

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatBuildSummary(stats, time.Since(start)))
	return nil
}

// loadSite resolves the site config and output styles shared by the
// build and posts commands.
func loadSite(cmd *cobra.Command) (*site.Config, *pretty.Styles, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, nil, fmt.Errorf("get color flag: %w", err)
	}

	cfg, err := site.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
	return cfg, styles, nil
}
