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
	"log/slog"

	"github.com/slidewise/slidewise/ai"
)

// Provider bundles the production clients behind the ai.Provider
// interface. All clients share one normalized settings snapshot.
type Provider struct {
	cfg        *ai.Config
	captioner  *Captioner
	summarizer *Summarizer
	embedder   *Embedder
	logger     *slog.Logger
}

// NewProvider creates a provider for an OpenAI-style service. A nil
// cfg falls back to environment-derived defaults. Construction succeeds
// even without credentials; calls through a credential-less provider
// come back Disabled.
func NewProvider(cfg *ai.Config) (ai.Provider, error) {
	if cfg == nil {
		cfg = ai.DefaultConfig()
	}
	cfg.Normalize()

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	return &Provider{
		cfg:        cfg,
		captioner:  newCaptioner(cfg),
		summarizer: newSummarizer(cfg),
		embedder:   embedder,
		logger:     slog.Default().With("component", "openai-provider"),
	}, nil
}

// Captioner returns the image captioning client.
func (p *Provider) Captioner() ai.Captioner {
	return p.captioner
}

// Summarizer returns the table summarization client.
func (p *Provider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// Embedder returns the text embedding client.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close releases provider resources. The HTTP clients keep no
// connections worth draining, so this only logs the shutdown.
func (p *Provider) Close() error {
	p.logger.Debug("provider closed")
	return nil
}
