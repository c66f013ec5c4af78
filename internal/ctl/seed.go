package ctl

import (
	"context"
	"fmt"

	"github.com/fedl/labsite/internal/app/content"
	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"github.com/fedl/labsite/internal/app/system/indexes"
	"github.com/fedl/labsite/internal/app/system/timeouts"
	"github.com/fedl/labsite/internal/app/system/validators"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the MongoDB content collections",
		Long: `seed validates the embedded content (or an exported YAML file given
with --file), overwrites every content collection in the configured
database with it and ensures the collection indexes. Run it before
starting the server with content_source=mongo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			snap, err := readSnapshot(path)
			if err != nil {
				return err
			}
			if err := content.Validate(snap); err != nil {
				return err
			}
			return runSeed(cmd.Context(), cmd, cfg, snap, opts.logger())
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "exported YAML snapshot to seed instead of the embedded content")
	return cmd
}

func runSeed(ctx context.Context, cmd *cobra.Command, cfg *Config, snap content.Snapshot, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client, db, err := openMongo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	writeCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Write(), logger, "seed content")
	defer cancel()

	if err := validators.EnsureAll(writeCtx, db, logger); err != nil {
		return fmt.Errorf("ensure validators: %w", err)
	}
	store := contentstore.New(db)
	if err := store.Replace(writeCtx, snap); err != nil {
		return err
	}
	if err := indexes.EnsureAll(writeCtx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	counts, err := store.Count(writeCtx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seeded %s\n", cfg.MongoDatabase)
	for _, coll := range []string{contentstore.CollResearch, contentstore.CollPublications, contentstore.CollMembers, contentstore.CollBoard} {
		fmt.Fprintf(out, "  %-20s %d\n", coll, counts[coll])
	}
	return nil
}
