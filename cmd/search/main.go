// Command search looks up pages, posts and papers in the site search index.
//
// With no arguments on a terminal it opens an interactive search box and
// prints the chosen URL. With arguments, or when stdout is not a terminal,
// it prints matching rows and exits.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/contextutil"
	"portfolio/internal/logging"
	"portfolio/internal/search"
	"portfolio/internal/ui"
)

type searchOptions struct {
	source  string
	noColor bool
}

func newRootCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the portfolio site",
		Long: `Search blog posts, pages and research papers.

Examples:
  search
  search cooperation
  search --index https://example.org/search-index.json moderation`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.source, "index", "", "Index file path or URL (default from SEARCH_INDEX_URL or INDEX_PATH)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colours in the interactive view")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, query string, opts searchOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	ctx = contextutil.WithLogger(ctx, logger)

	source := opts.source
	if source == "" {
		source = cfg.IndexSource()
	}
	entries := search.LoadEntries(ctx, &http.Client{Timeout: 10 * time.Second}, source)

	out := cmd.OutOrStdout()
	if query != "" || !stdoutIsTerminal() {
		return ui.WritePlain(out, search.Match(entries, query), cfg.SiteURL)
	}

	model := ui.NewModel(entries, ui.Options{
		SiteURL:   cfg.SiteURL,
		StartOpen: true,
		NoColor:   opts.noColor || os.Getenv("NO_COLOR") != "",
	})
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("search UI failed: %w", err)
	}
	if selected := model.Selected(); selected != "" {
		_, err := fmt.Fprintln(out, selected)
		return err
	}
	return nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("search failed", "error", err)
		os.Exit(1)
	}
}
