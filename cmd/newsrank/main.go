// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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

	"github.com/joho/godotenv"
	"github.com/poiesic/newsrank/ai"
	"github.com/poiesic/newsrank/ai/openai"
	"github.com/poiesic/newsrank/core"
	"github.com/poiesic/newsrank/search"
	"github.com/poiesic/newsrank/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load optional .env file for host and model settings
	godotenv.Load()

	app := &cli.App{
		Name:  "newsrank",
		Usage: "Relevance ranking for syndicated article collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"NEWSRANK_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load articles from a JSON file into the database",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"NEWSRANK_DB"},
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to JSON file containing an array of articles",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank stored articles against a query",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"NEWSRANK_DB"},
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL (empty disables semantic scoring)",
						EnvVars: []string{"NEWSRANK_EMBEDDING_HOST"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						EnvVars: []string{"NEWSRANK_EMBEDDING_MODEL"},
					},
					&cli.StringFlag{
						Name:    "interpreter-host",
						Usage:   "Query interpreter host URL (defaults to embedding-host)",
						EnvVars: []string{"NEWSRANK_INTERPRETER_HOST"},
					},
					&cli.StringFlag{
						Name:    "interpreter-model",
						Usage:   "Query interpreter model name",
						EnvVars: []string{"NEWSRANK_INTERPRETER_MODEL"},
					},
					&cli.BoolFlag{
						Name:  "no-hybrid",
						Usage: "Disable hybrid combination, use semantic scoring alone",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of displayed results",
						Value: 6,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum relevance percentage for display",
						Value: 75,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit the full search result as JSON",
					},
				},
			},
			{
				Name:   "recent",
				Usage:  "List the most recently published articles",
				Action: recentCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"NEWSRANK_DB"},
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of articles to list",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read articles file: %w", err)
	}

	var articles []*core.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return fmt.Errorf("failed to parse articles file: %w", err)
	}
	if len(articles) == 0 {
		return fmt.Errorf("no articles found in %s", c.String("file"))
	}

	// Open database
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewArticleRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	added, err := repo.AddArticles(ctx, articles...)
	if err != nil {
		return fmt.Errorf("failed to store articles: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stored %d articles\n", len(added))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	// Open database
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewArticleRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	articles, err := repo.ListArticles(ctx)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	// Create AI provider when an embedding host is configured; without one
	// the searcher degrades to keyword ranking.
	var provider ai.AIProvider
	if host := c.String("embedding-host"); host != "" {
		interpreterHost := c.String("interpreter-host")
		if interpreterHost == "" {
			interpreterHost = host
		}

		opts := []ai.ConfigOption{
			ai.WithEmbeddingHost(host),
			ai.WithInterpreterHost(interpreterHost),
		}
		if model := c.String("embedding-model"); model != "" {
			opts = append(opts, ai.WithEmbeddingModel(model))
		}
		if model := c.String("interpreter-model"); model != "" {
			opts = append(opts, ai.WithInterpreterModel(model))
		}
		aiConfig := ai.NewConfig(opts...)
		if err := aiConfig.Validate(); err != nil {
			return fmt.Errorf("invalid AI configuration: %w", err)
		}

		provider, err = openai.NewProvider(aiConfig)
		if err != nil {
			return fmt.Errorf("failed to create AI provider: %w", err)
		}
		defer provider.Close()
	}

	searchConfig := search.DefaultConfig()
	searchConfig.DisplayLimit = c.Int("limit")
	searchConfig.DisplayThreshold = c.Float64("threshold")
	searchConfig.HybridEnabled = !c.Bool("no-hybrid")

	searcher, err := search.NewSearcher(provider, search.WithConfig(searchConfig))
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	result := searcher.Search(ctx, query, articles)

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("Search type: %s, results: %d\n", result.SearchType, result.TotalResults)
	for i, scored := range result.Articles {
		fmt.Printf("%2d. [%3d%%] %s\n", i+1, scored.RelevancePercentage, scored.Title)
		if scored.Link != "" {
			fmt.Printf("    %s\n", scored.Link)
		}
	}
	return nil
}

func recentCommand(c *cli.Context) error {
	ctx := context.Background()

	// Open database
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewArticleRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	articles, err := repo.GetRecentArticles(ctx, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to load recent articles: %w", err)
	}

	for _, article := range articles {
		date := article.PublishedDate
		if date == "" {
			date = "undated"
		}
		fmt.Printf("%-10s  %s\n", date, article.Title)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
