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


package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/slidewise/slidewise/ai"
	"github.com/slidewise/slidewise/assets"
	"github.com/slidewise/slidewise/core"
)

// defaultPoolSize bounds concurrent caption requests. Small enough to
// stay clear of service rate limits, large enough to hide latency.
const defaultPoolSize = 4

// Pipeline runs the semantic enrichment sweeps over a parsed deck:
// vision captions for pictures and prose summaries for tables. Every
// model call is a soft failure; a sweep always visits every element it
// can and never aborts the run.
type Pipeline struct {
	provider ai.Provider
	pool     *ants.Pool
	poolSize int
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPoolSize sets the caption worker pool size. Values below one are
// ignored.
func WithPoolSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.poolSize = n
		}
	}
}

// WithLogger sets the logger used by the sweeps.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates an enrichment pipeline backed by the given provider.
func New(provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	p := &Pipeline{
		provider: provider,
		poolSize: defaultPoolSize,
		logger:   slog.Default().With("component", "enrich"),
	}
	for _, opt := range opts {
		opt(p)
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating caption worker pool: %w", err)
	}
	p.pool = pool

	return p, nil
}

// Release shuts down the worker pool. The pipeline must not be used
// after Release.
func (p *Pipeline) Release() {
	p.pool.Release()
}

// Enrich runs both sweeps over the deck: captions for pictures using
// assets resolved from the raw archive bytes, and summaries for tables.
// It returns the captions grouped by slide index for downstream
// storage. The only hard error is an unreadable archive; everything
// downstream is soft and logged.
func (p *Pipeline) Enrich(ctx context.Context, deck *core.Deck, archiveBytes []byte) (map[int][]string, error) {
	if deck == nil {
		return nil, ErrNilDeck
	}

	archive, err := assets.Open(archiveBytes)
	if err != nil {
		return nil, fmt.Errorf("opening deck archive: %w", err)
	}

	var captions map[int][]string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		captions = p.CaptionPictures(ctx, deck, archive, NewCaptionCache())
	}()
	go func() {
		defer wg.Done()
		p.SummarizeTables(ctx, deck)
	}()
	wg.Wait()

	return captions, nil
}

// captionTarget pairs a picture element with its slide index so sweep
// results can be grouped per slide in deck order.
type captionTarget struct {
	slide   int
	element *core.Element
}

// CaptionPictures captions every picture element in the deck, writing
// each successful caption onto the element and returning the captions
// grouped by slide index in element order. The cache deduplicates
// repeated asset paths; a nil cache gets a fresh one. Pictures whose
// caption attempt fails or is skipped produce no map entry.
func (p *Pipeline) CaptionPictures(ctx context.Context, deck *core.Deck, archive *assets.Archive, cache *CaptionCache) map[int][]string {
	out := make(map[int][]string)
	if deck == nil {
		return out
	}
	if cache == nil {
		cache = NewCaptionCache()
	}

	var targets []captionTarget
	for si := range deck.Slides {
		slide := &deck.Slides[si]
		for ei := range slide.Elements {
			if slide.Elements[ei].Type == core.ElementPicture {
				targets = append(targets, captionTarget{slide: slide.Index, element: &slide.Elements[ei]})
			}
		}
	}
	if len(targets) == 0 {
		return out
	}

	captioner := p.provider.Captioner()
	if !captioner.Enabled() {
		p.logger.Info("caption sweep skipped",
			"reason", "captioning disabled",
			"pictures", len(targets))
		return out
	}

	started := time.Now()
	var requests, hits atomic.Int64
	captions := make([]string, len(targets))
	oks := make([]bool, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		// Copy the loop variables so the task closure sees this
		// iteration's values under pre-1.22 loop semantics.
		i, target := i, target
		wg.Add(1)
		task := func() {
			defer wg.Done()
			captions[i], oks[i] = p.captionOne(ctx, captioner, archive, cache, target.element, &requests, &hits)
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool rejected the task, run it on the sweep goroutine.
			task()
		}
	}
	wg.Wait()

	captioned := 0
	for i, target := range targets {
		if !oks[i] {
			continue
		}
		target.element.Caption = captions[i]
		out[target.slide] = append(out[target.slide], captions[i])
		captioned++
	}

	p.logger.Info("caption sweep complete",
		"pictures", len(targets),
		"captioned", captioned,
		"requests", requests.Load(),
		"cache_hits", hits.Load(),
		"elapsed", time.Since(started))
	return out
}

// captionOne produces the caption for a single picture element. The
// first goroutine to claim a path does the asset lookup and model call;
// duplicates wait on the cached outcome.
func (p *Pipeline) captionOne(ctx context.Context, captioner ai.Captioner, archive *assets.Archive, cache *CaptionCache, el *core.Element, requests, hits *atomic.Int64) (string, bool) {
	path := strings.TrimSpace(el.Path)
	if path == "" {
		p.logger.Debug("picture without asset path", "key", el.Key)
		return "", false
	}

	entry, leader := cache.claim(path)
	if !leader {
		hits.Add(1)
		return entry.wait(ctx)
	}

	data, found := archive.Resolve(path)
	if !found {
		p.logger.Debug("picture asset not found in archive", "path", path)
		entry.resolve("", false)
		return "", false
	}

	res := captioner.CaptionImage(ctx, data, assets.MIMEType(path))
	if res.Status != ai.StatusDisabled {
		requests.Add(1)
	}
	entry.resolve(res.Text, res.Ok())
	return res.Text, res.Ok()
}

// SummarizeTables summarizes every table element in the deck, writing
// each successful summary onto the element. Tables run sequentially;
// their canonical text is cheap to build and there are rarely more than
// a handful per deck. Returns the number of tables summarized.
func (p *Pipeline) SummarizeTables(ctx context.Context, deck *core.Deck) int {
	if deck == nil {
		return 0
	}

	summarizer := p.provider.Summarizer()
	if !summarizer.Enabled() {
		p.logger.Info("table sweep skipped", "reason", "summarization disabled")
		return 0
	}

	started := time.Now()
	tables, summarized := 0, 0
	for si := range deck.Slides {
		slide := &deck.Slides[si]
		for ei := range slide.Elements {
			el := &slide.Elements[ei]
			if el.Type != core.ElementTable {
				continue
			}
			tables++

			if el.Rows > len(el.Cells) {
				p.logger.Debug("table grid smaller than declared",
					"slide", slide.Index,
					"declared_rows", el.Rows,
					"actual_rows", len(el.Cells))
			}

			text := core.TableText(el)
			if text == "" {
				continue
			}

			res := summarizer.SummarizeTable(ctx, text)
			if res.Ok() {
				el.Summary = res.Text
				summarized++
			}
		}
	}

	if tables > 0 {
		p.logger.Info("table sweep complete",
			"tables", tables,
			"summarized", summarized,
			"elapsed", time.Since(started))
	}
	return summarized
}
