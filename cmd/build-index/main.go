// Command build-index scans the site checkout in the working directory and
// writes public/search-index.json.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/contextutil"
	"portfolio/internal/indexer"
	"portfolio/internal/logging"
	"portfolio/internal/site"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-index",
		Short: "Generate the site search index",
		Long: `Scan blog posts, static pages and the research listing under the
current directory and write public/search-index.json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd)
		},
	}
}

func run(ctx context.Context, cmd *cobra.Command) error {
	logCfg := config.LoadLogging()
	logger, err := logging.Setup(logging.Options{Level: logCfg.Level, Format: logCfg.Format})
	if err != nil {
		return err
	}
	ctx = contextutil.WithLogger(ctx, logger)

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	pages, err := site.DefaultPages()
	if err != nil {
		return err
	}

	builder := indexer.NewBuilder(site.NewLayout(root), pages)
	if _, err := builder.Run(ctx, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("build-index failed", "error", err)
		stop()
		os.Exit(1)
	}
}
