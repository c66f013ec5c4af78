package ctl

import (
	"encoding/json"
	"fmt"

	"github.com/fedl/labsite/internal/app/features/navigate"
	"github.com/spf13/cobra"
)

type resolved struct {
	Href string `json:"href"`
	navigate.Result
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "resolve <href>...",
		Short: "Show how in-page links are resolved",
		Long: `resolve prints, as one JSON object per line, what the client script
does with each link when clicked on the page at --from: a view change,
an immediate section scroll, or a scroll deferred until the landing
page has rendered.`,
		Example: `  labsitectl resolve '#research-2d-materials' '#members' --from /contact`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			h := navigate.NewHandler(cfg.HeaderOffset, nil, opts.logger())

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, href := range args {
				if err := enc.Encode(resolved{Href: href, Result: h.Resolve(from, href)}); err != nil {
					return fmt.Errorf("encode %s: %w", href, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "/", "path of the page the link is clicked on")
	return cmd
}
