package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"static-scraper/config"
	"static-scraper/pipeline"
	"static-scraper/utils"
)

var (
	flagURL      string
	flagStrategy string
	flagOutput   string
	flagColumn   string
	flagPolicy   string
	flagBrowser  bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:           "static-scraper",
	Short:         "Scrapes one static page into a spreadsheet and builds phrases from its most frequent words.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagURL, "url", "", "page to scrape (overrides TARGET_URL)")
	f.StringVar(&flagStrategy, "strategy", "", "extraction strategy: table or items (overrides EXTRACT_STRATEGY)")
	f.StringVar(&flagOutput, "output", "", "output file, .xlsx or .csv (overrides OUTPUT_PATH)")
	f.StringVar(&flagColumn, "column", "", "column to analyze, index or header name (overrides TEXT_COLUMN)")
	f.StringVar(&flagPolicy, "policy", "", "items missing a field: abort or skip (overrides MISSING_FIELD_POLICY)")
	f.BoolVar(&flagBrowser, "browser", false, "render the page with headless Chrome")
	f.BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := utils.NewLogger()
	if flagDebug {
		logger.SetDebug(true)
	}

	cfg := config.Load()
	applyFlags(cmd, cfg)

	logger.Info("=== Static page scraper starting ===")
	logger.Info("Config: url: %s | strategy: %s | column: %s | top: %d | output: %s",
		cfg.TargetURL, cfg.Strategy, cfg.TextColumn, cfg.TopN, cfg.OutputPath)

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	report, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	report.Print(cmd.OutOrStdout())
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.TargetURL = flagURL
	}
	if flags.Changed("strategy") {
		cfg.Strategy = flagStrategy
	}
	if flags.Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if flags.Changed("column") {
		cfg.TextColumn = flagColumn
	}
	if flags.Changed("policy") {
		cfg.MissingFieldPolicy = flagPolicy
	}
	if flagBrowser {
		cfg.FetchMode = config.FetchBrowser
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		utils.NewLogger().Error("%v", err)
		os.Exit(1)
	}
}
