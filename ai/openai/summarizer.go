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
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/slidewise/slidewise/ai"
)

// Summarizer implements ai.Summarizer against the responses endpoint of
// an OpenAI-style service. It shares the vision model setting with the
// captioner; the upstream service routes text-only requests through the
// same model identifier.
type Summarizer struct {
	cfg    *ai.Config
	client *responsesClient
	logger *slog.Logger
}

func newSummarizer(cfg *ai.Config) *Summarizer {
	return &Summarizer{
		cfg:    cfg,
		client: newResponsesClient(cfg),
		logger: slog.Default().With("component", "openai-summarizer"),
	}
}

// NewSummarizer creates a table summarization client for the given
// settings. Returns the ai.Summarizer interface to enforce abstraction.
func NewSummarizer(cfg *ai.Config) ai.Summarizer {
	cfg.Normalize()
	return newSummarizer(cfg)
}

// Enabled reports whether the settings allow summarization requests.
func (s *Summarizer) Enabled() bool {
	return s.cfg.CaptioningEnabled()
}

// SummarizeTable condenses canonical table text into a short prose
// summary. Input is bounded to the model's practical context before
// sending; oversized tables lose their tail rows, not the request.
func (s *Summarizer) SummarizeTable(ctx context.Context, tableText string) ai.TextResult {
	text := strings.TrimSpace(tableText)
	switch {
	case text == "":
		return s.skip("empty table text")
	case s.cfg.APIKey == "":
		return s.skip("api key not configured")
	case s.cfg.VisionModel == "":
		return s.skip("model not configured")
	}

	started := time.Now()
	text = boundTokens(text, summaryTokenBudget)

	summary, err := s.client.createResponse(ctx, responsesRequest{
		Model:        s.cfg.VisionModel,
		Instructions: summaryInstruction,
		Input: []inputTurn{{
			Role:    "user",
			Content: []inputContent{{Type: "input_text", Text: text}},
		}},
	})
	if err != nil {
		attrs := []any{"chars", len(text), "elapsed", time.Since(started)}
		var se *statusError
		if errors.As(err, &se) {
			attrs = append(attrs, "status_code", se.StatusCode, "body", se.Body)
		} else {
			attrs = append(attrs, "error", err)
		}
		s.logger.Error("table summary failed", attrs...)
		return ai.FailedText(err.Error())
	}

	s.logger.Info("table summarized",
		"chars", len(text),
		"summary_chars", len(summary),
		"elapsed", time.Since(started))
	return ai.OkText(summary)
}

func (s *Summarizer) skip(reason string) ai.TextResult {
	s.logger.Info("table summary skipped",
		"reason", reason,
		"elapsed", time.Duration(0))
	return ai.DisabledText(reason)
}
