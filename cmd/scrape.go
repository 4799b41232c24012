// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// fetch → variants → extract → assets → rewrite → render → write.
//
// It handles flag/config merging, renderer selection, and the final
// per-result summary.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/storyfetch/config"
	"github.com/gaurav-prasanna/storyfetch/core"
	"github.com/gaurav-prasanna/storyfetch/core/assets"
	"github.com/gaurav-prasanna/storyfetch/core/extract"
	"github.com/gaurav-prasanna/storyfetch/core/fetch"
	"github.com/gaurav-prasanna/storyfetch/core/output"
	"github.com/gaurav-prasanna/storyfetch/core/pipeline"
	"github.com/gaurav-prasanna/storyfetch/core/render"
)

// Flag variables.
var (
	flagConfig string
	flagOutput string
	flagAssets string
	flagSleep  float64
	flagLimit  int
	flagPDF    bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the story list and write localized Markdown archives",
	Long: `Scrape processes the configured story URLs in order. For each story the
English page is fetched first; when an alternate-language link points at a
Simplified-Chinese edition, that edition is archived too. Images referenced
by a story are downloaded once and rewritten to local relative paths.

Examples:
  storyfetch scrape
  storyfetch scrape --sleep 1.2 --limit 3
  storyfetch scrape --config run.yaml --output ./stories --assets ./media
  storyfetch scrape --pdf`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file (overrides built-in defaults)")
	scrapeCmd.Flags().StringVar(&flagOutput, "output", "", "Markdown output root (default: ./output)")
	scrapeCmd.Flags().StringVar(&flagAssets, "assets", "", "Image asset root (default: ./assets)")
	scrapeCmd.Flags().Float64Var(&flagSleep, "sleep", 0, "Delay in seconds between requests (default: 1.0)")
	scrapeCmd.Flags().IntVar(&flagLimit, "limit", 0, "Process only the first N stories (0 = all)")
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Additionally render each story as PDF")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	delay := time.Duration(cfg.SleepSeconds * float64(time.Second))
	fetcher := fetch.New(cfg.MaxRetries, delay)

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	var extras []core.Renderer
	if cfg.PDF {
		extras = append(extras, render.NewPDFRenderer())
	}

	pipe := pipeline.New(
		fetcher,
		extract.Default(),
		assets.NewManager(cfg.AssetDir, fetcher),
		writer,
		render.NewMarkdownRenderer(),
		extras,
		delay,
		os.Stdout,
	)

	results := pipe.Run(context.Background(), cfg.Articles, cfg.Limit)

	if data, err := render.RenderReport(render.BuildReport(results)); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Report error: %v\n", err)
	} else if path, err := writer.WriteReport(data); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Report write error: %v\n", err)
	} else {
		fmt.Fprintf(os.Stdout, "✓ Report: %s\n", path)
	}

	printSummary(results)
	return nil
}

// loadConfig merges the optional config file with CLI flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flagOutput
	}
	if cmd.Flags().Changed("assets") {
		cfg.AssetDir = flagAssets
	}
	if cmd.Flags().Changed("sleep") {
		cfg.SleepSeconds = flagSleep
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = flagLimit
	}
	if cmd.Flags().Changed("pdf") {
		cfg.PDF = flagPDF
	}
	return cfg, nil
}

// printSummary writes the per-result status lines, warnings indented.
func printSummary(results []core.StoryResult) {
	fmt.Fprintln(os.Stdout, "\nSummary:")
	for _, r := range results {
		status, path := "FAIL", "N/A"
		if r.OK {
			status, path = "OK", r.ContentPath
		}
		fmt.Fprintf(os.Stdout, "  - %s | %s | %s | Markdown: %s\n", r.Meta.Language, r.Meta.Title, status, path)
		for _, w := range r.Warnings {
			fmt.Fprintf(os.Stdout, "      ! %s\n", w)
		}
	}
}
