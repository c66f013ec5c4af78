package ctl

import (
	"errors"
	"fmt"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check content against the load-time rules",
		Long: `validate loads the embedded content (or an exported YAML file given
with --file), renders its Markdown and checks every rule the server
enforces at startup. Each problem is printed on its own line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(path)
			if err != nil {
				return err
			}
			return runValidate(cmd, snap)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "exported YAML snapshot to check instead of the embedded content")
	return cmd
}

func runValidate(cmd *cobra.Command, snap content.Snapshot) error {
	out := cmd.OutOrStdout()

	store, err := content.New(snap)
	if err != nil {
		var ve *content.ValidationError
		if errors.As(err, &ve) {
			for _, p := range ve.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			return fmt.Errorf("%d content problem(s)", len(ve.Problems))
		}
		return err
	}

	c := store.Counts()
	fmt.Fprintf(out, "content ok: %d research areas, %d publication periods (%d entries), %d members, %d notice, %d news, %d gallery\n",
		c.Research, c.Periods, c.Publications, c.Members, c.Notice, c.News, c.Gallery)
	return nil
}
