// Copyright 2026 zoomETFs Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	zoometf "github.com/MOMOGSDIOP/zoomETFsProject"
	"github.com/MOMOGSDIOP/zoomETFsProject/ai"
	"github.com/MOMOGSDIOP/zoomETFsProject/catalog"
	"github.com/MOMOGSDIOP/zoomETFsProject/config"
	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage/badger"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "zoometf",
		Usage: "Semantic search over an ETF catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "config.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Validate and load a catalog file into the store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Catalog file (JSON or CSV); defaults to the configured seed file",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
				},
			},
			{
				Name:   "validate",
				Usage:  "Validate a catalog file without storing anything",
				Action: validateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Catalog file (JSON or CSV)",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the catalog with a natural language query",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-hits",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print results as JSON",
					},
				},
			},
			{
				Name:   "refresh",
				Usage:  "Refresh market prices for records with a symbol",
				Action: refreshCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts per quote lookup",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 500 * time.Millisecond,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.AppConfig, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(cfg *config.AppConfig) (*zoometf.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(cfg.AI.Host),
		ai.WithModel(cfg.AI.Model),
		ai.WithMaxAttempts(cfg.AI.MaxAttempts),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return zoometf.NewDatabase(cfg.Storage.Path, zoometf.WithAIConfig(aiConfig))
}

func seedCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	filePath := c.String("file")
	if filePath == "" {
		filePath = cfg.Catalog.SeedFile
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	etfs, err := catalog.LoadETFs(filePath)
	if err != nil {
		return fmt.Errorf("failed to load catalog file: %w", err)
	}

	tracker := catalog.NewProgressTracker(os.Stderr, len(etfs), c.Int("report-interval"))
	report, err := pipeline.Ingest(context.Background(), etfs, tracker)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d records, rejected %d (%.1fs)\n",
		report.Ingested, report.Rejected, tracker.Elapsed().Seconds())
	for key, errs := range report.Rejection {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", key, strings.Join(errs, "; "))
	}
	return nil
}

func validateCommand(c *cli.Context) error {
	etfs, err := catalog.LoadETFs(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to load catalog file: %w", err)
	}

	invalid := 0
	for _, etf := range etfs {
		result := core.ValidateETF(etf)
		if result.Valid {
			continue
		}
		invalid++
		key := etf.ISIN
		if key == "" {
			key = etf.Name
		}
		fmt.Printf("%s: %s\n", key, strings.Join(result.Errors, "; "))
	}

	fmt.Fprintf(os.Stderr, "%d records checked, %d invalid\n", len(etfs), invalid)
	if invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	results, err := searcher.Search(context.Background(), query, c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No matching ETFs found.")
		return nil
	}
	for i, result := range results {
		fmt.Printf("%2d. [%3d] %s (%s)\n", i+1, result.Score, result.ETF.Name, result.ETF.ISIN)
		if result.ETF.Fees != nil {
			fmt.Printf("         fees %.2f%%", *result.ETF.Fees)
			if result.ETF.Performance != nil {
				fmt.Printf(", perf %.1f%%", *result.ETF.Performance)
			}
			fmt.Println()
		}
	}
	return nil
}

func refreshCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(cfg.Storage.Path, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	enricher := catalog.NewQuoteEnricher(
		catalog.WithQuoteRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	)
	tracker := catalog.NewProgressTracker(os.Stderr, count, c.Int("report-interval"))

	updated, err := enricher.RefreshPrices(ctx, repo, tracker)
	if err != nil {
		return fmt.Errorf("price refresh failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Updated %d of %d records\n", updated, count)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
