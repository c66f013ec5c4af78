package ctl

import (
	"github.com/fedl/labsite/internal/app/content"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the configured content as one YAML document",
		Long: `export loads content from the configured source (embedded or mongo)
and writes it to stdout in the layout that validate --file and
seed --file accept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			snap, err := loadConfigured(cmd.Context(), cfg, opts.logger())
			if err != nil {
				return err
			}
			b, err := content.MarshalSnapshot(snap)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
