// Package ctl implements labsitectl, the offline companion to the lab site
// server. It validates and exports content, seeds MongoDB and explains how the
// client script will treat an in-page link.
package ctl

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	cfgFile string
	verbose bool

	// flag overrides, applied only when set on the command line
	source   string
	mongoURI string
	database string
}

// NewRootCmd builds the labsitectl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "labsitectl",
		Short: "Content tooling for the FEDL lab site",
		Long: `labsitectl checks the lab's content files against the rules the
server enforces at startup, seeds MongoDB with them, exports whatever
the server would load, and shows how in-page links are resolved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "config.yaml", "config file path")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.source, "content-source", "", "content source: embedded or mongo")
	pf.StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection URI")
	pf.StringVar(&opts.database, "mongo-database", "", "MongoDB database name")

	root.AddCommand(
		newValidateCmd(opts),
		newResolveCmd(opts),
		newSeedCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs labsitectl and reports any error on stderr.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// config merges file, environment and explicitly set flags.
func (o *rootOptions) config(cmd *cobra.Command) (*Config, error) {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("content-source") {
		overrides["content_source"] = o.source
	}
	if flags.Changed("mongo-uri") {
		overrides["mongo_uri"] = o.mongoURI
	}
	if flags.Changed("mongo-database") {
		overrides["mongo_database"] = o.database
	}

	cfg, err := LoadConfig(o.cfgFile, overrides)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
