package cmd

import (
	"context"
	"fmt"

	"lab-admin/core/config"
	"lab-admin/core/logger"
	"lab-admin/core/reconcile"
	"lab-admin/feature/publications"
	"lab-admin/feature/publications/dblp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunCrawl bool

// crawlCmd scrapes DBLP once and merges the result into the publications document.
var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Scrape DBLP and merge new publications",
	Long: `Fetches the configured DBLP author page, fills in conference locations and
dates from the proceedings pages, and merges the records into publications.json.

Journals already stored are never overwritten, and conferences that already
have a location are left alone.

Examples:
  # Merge and save
  crawl

  # Show the counters without saving
  crawl --dry-run`,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().BoolVar(&dryRunCrawl, "dry-run", false, "Compute counters without saving")
	RootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	store, err := openStore(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	svc := publications.NewService(store, dblp.NewClient(cfg.Scraper), l)

	l.Info("Starting crawl", zap.String("listing_url", cfg.Scraper.ListingURL), zap.Bool("dry_run", dryRunCrawl))
	result, err := svc.Crawl(ctx, reconcile.Options{DryRun: dryRunCrawl})
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	l.Info("Crawl report",
		zap.Int("total", result.Total),
		zap.Int("added", result.Added),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
	)
	if result.DryRun {
		l.Info("Dry-run mode: No changes were made.")
	}
	return nil
}
