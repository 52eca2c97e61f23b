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


package ai

import (
	"os"
	"strings"
)

// Config is an immutable snapshot of the external model service
// settings, taken once per enrichment run.
//
// A blank APIKey or a blank model identifier disables the corresponding
// sub-feature for the run; it is never a construction error. This lets
// operators run the pipeline without credentials and still get the
// non-AI parts of deck processing.
type Config struct {
	// APIKey authenticates against the model service as a bearer token.
	// Blank means every sub-feature is disabled.
	APIKey string

	// VisionModel is the model identifier used for both image captioning
	// and table summarization (a text-capable variant of the same model
	// family). Example: "gpt-4.1-mini"
	VisionModel string

	// EmbeddingModel is the model identifier for text embeddings.
	// Example: "text-embedding-3-small"
	EmbeddingModel string

	// BaseURL is the service endpoint root, without a trailing slash.
	BaseURL string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the service API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithVisionModel sets the vision/text model identifier.
func WithVisionModel(model string) ConfigOption {
	return func(c *Config) {
		c.VisionModel = model
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithBaseURL sets the service endpoint root.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// DefaultConfig resolves settings from the environment, falling back to
// the service's published defaults for the model identifiers. A variable
// that is set but empty stays empty, which disables that sub-feature.
func DefaultConfig() *Config {
	return &Config{
		APIKey:         strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		VisionModel:    envOr("OPENAI_MODEL", "gpt-4.1-mini"),
		EmbeddingModel: envOr("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		BaseURL:        envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
	}
}

// NewConfig creates a Config from the environment defaults and applies
// the provided options. This is the recommended constructor.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithVisionModel("gpt-4.1"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Normalize()
	return cfg
}

// Normalize trims every field and strips a trailing slash from the base
// URL so endpoint paths can be appended directly.
func (c *Config) Normalize() {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.VisionModel = strings.TrimSpace(c.VisionModel)
	c.EmbeddingModel = strings.TrimSpace(c.EmbeddingModel)
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
}

// CaptioningEnabled reports whether image captioning (and table
// summarization, which shares the model) can issue requests.
func (c *Config) CaptioningEnabled() bool {
	return c.APIKey != "" && c.VisionModel != ""
}

// EmbeddingEnabled reports whether embedding requests can be issued.
func (c *Config) EmbeddingEnabled() bool {
	return c.APIKey != "" && c.EmbeddingModel != ""
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}
