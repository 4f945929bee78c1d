package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkwell-md/inkwell/internal/ui/pretty"
	"github.com/inkwell-md/inkwell/pkg/site"
)

func newPostsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the site's posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPosts(cmd, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output the post index as JSON")

	return cmd
}

func runPosts(cmd *cobra.Command, asJSON bool) error {
	cfg, styles, err := loadSite(cmd)
	if err != nil {
		return err
	}

	posts, err := site.LoadPosts(cfg.PostsDir)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := site.MarshalIndex(posts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	table := pretty.NewPostTable(styles, width)
	fmt.Fprint(cmd.OutOrStdout(), table.Render(site.IndexEntries(posts)))
	return nil
}
