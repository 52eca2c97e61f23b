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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/slidewise/slidewise/ai"
)

// Embedder implements ai.Embedder using langchaingo's OpenAI-compatible
// embeddings client.
type Embedder struct {
	cfg      *ai.Config
	embedder embeddings.Embedder
	logger   *slog.Logger
}

func newEmbedder(cfg *ai.Config) (*Embedder, error) {
	token := cfg.APIKey
	if token == "" {
		// The client constructor requires a token even though the
		// per-call checks below will never let a request out without
		// real credentials.
		token = "none"
	}

	opts := []openai.Option{openai.WithToken(token)}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.EmbeddingModel != "" {
		opts = append(opts, openai.WithEmbeddingModel(cfg.EmbeddingModel))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating embeddings client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	return &Embedder{
		cfg:      cfg,
		embedder: embedder,
		logger:   slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a text embedding client for the given settings.
// Returns the ai.Embedder interface to enforce abstraction.
func NewEmbedder(cfg *ai.Config) (ai.Embedder, error) {
	cfg.Normalize()
	return newEmbedder(cfg)
}

// Enabled reports whether the settings allow embedding requests.
func (e *Embedder) Enabled() bool {
	return e.cfg.EmbeddingEnabled()
}

// EmbedText generates a vector embedding for a single text string.
// Blank input, a blank API key, or a blank model identifier skip the
// request; errors are logged and returned as a Failed result.
func (e *Embedder) EmbedText(ctx context.Context, text string) ai.VectorResult {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return e.skip("empty text")
	case e.cfg.APIKey == "":
		return e.skip("api key not configured")
	case e.cfg.EmbeddingModel == "":
		return e.skip("embedding model not configured")
	}

	started := time.Now()
	vectors, err := e.embedder.EmbedDocuments(ctx, []string{trimmed})
	if err != nil {
		e.logger.Error("embedding request failed",
			"chars", len(trimmed),
			"elapsed", time.Since(started),
			"error", err)
		return ai.FailedVector(err.Error())
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		e.logger.Error("no embedding data returned",
			"chars", len(trimmed),
			"elapsed", time.Since(started))
		return ai.FailedVector("no embedding data returned")
	}

	e.logger.Debug("text embedded",
		"chars", len(trimmed),
		"dimensions", len(vectors[0]),
		"elapsed", time.Since(started))
	return ai.OkVector(vectors[0])
}

func (e *Embedder) skip(reason string) ai.VectorResult {
	e.logger.Info("embedding skipped",
		"reason", reason,
		"elapsed", time.Duration(0))
	return ai.DisabledVector(reason)
}
