// Copyright 2026 Slidewise Labs
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
	"github.com/urfave/cli/v2"

	"github.com/slidewise/slidewise/ai"
	"github.com/slidewise/slidewise/ai/openai"
	"github.com/slidewise/slidewise/core"
	"github.com/slidewise/slidewise/enrich"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	godotenv.Load()

	app := &cli.App{
		Name:  "slidewise",
		Usage: "Semantic enrichment for parsed slide decks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "enrich",
				Usage:  "Caption pictures and summarize tables in a parsed deck",
				Action: enrichCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "deck",
						Aliases:  []string{"d"},
						Usage:    "Path to the parsed deck JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "archive",
						Aliases:  []string{"a"},
						Usage:    "Path to the original deck archive (.pptx)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Path for the enriched deck JSON (defaults to stdout)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent caption requests",
						Value: 4,
					},
				}, serviceFlags()...),
			},
			{
				Name:   "embed",
				Usage:  "Generate an embedding vector for a text string",
				Action: embedCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Text to embed",
						Required: true,
					},
				}, serviceFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// serviceFlags are the model-service settings shared by every command.
// Each falls back to the matching environment variable, so a populated
// .env needs no flags at all.
func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Model service API key",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "vision-model",
			Usage:   "Model for captions and table summaries",
			EnvVars: []string{"OPENAI_MODEL"},
			Value:   "gpt-4.1-mini",
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Model for text embeddings",
			EnvVars: []string{"OPENAI_EMBEDDING_MODEL"},
			Value:   "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Model service base URL",
			EnvVars: []string{"OPENAI_BASE_URL"},
			Value:   "https://api.openai.com/v1",
		},
	}
}

func serviceConfig(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithAPIKey(c.String("api-key")),
		ai.WithVisionModel(c.String("vision-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithBaseURL(c.String("base-url")),
	)
}

func enrichCommand(c *cli.Context) error {
	ctx := context.Background()

	deckData, err := os.ReadFile(c.String("deck"))
	if err != nil {
		return fmt.Errorf("failed to read deck file: %w", err)
	}

	var deck core.Deck
	if err := json.Unmarshal(deckData, &deck); err != nil {
		return fmt.Errorf("failed to parse deck JSON: %w", err)
	}

	archiveBytes, err := os.ReadFile(c.String("archive"))
	if err != nil {
		return fmt.Errorf("failed to read archive file: %w", err)
	}

	provider, err := openai.NewProvider(serviceConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	defer provider.Close()

	pipeline, err := enrich.New(provider, enrich.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	captions, err := pipeline.Enrich(ctx, &deck, archiveBytes)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	// The annotated deck plus the captions-by-slide mapping, which the
	// downstream indexer stores separately from the document.
	result := struct {
		Deck     *core.Deck       `json:"deck"`
		Captions map[int][]string `json:"captions"`
	}{Deck: &deck, Captions: captions}

	out, err := json.MarshalIndent(&result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode enriched deck: %w", err)
	}
	out = append(out, '\n')

	if path := c.String("out"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("failed to write enriched deck: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

func embedCommand(c *cli.Context) error {
	ctx := context.Background()

	provider, err := openai.NewProvider(serviceConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	defer provider.Close()

	res := provider.Embedder().EmbedText(ctx, c.String("text"))
	switch res.Status {
	case ai.StatusDisabled:
		return fmt.Errorf("embedding is disabled: %s", res.Reason)
	case ai.StatusFailed:
		return fmt.Errorf("embedding failed: %s", res.Reason)
	}

	out, err := json.Marshal(res.Vector)
	if err != nil {
		return fmt.Errorf("failed to encode embedding: %w", err)
	}
	fmt.Println(string(out))
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
