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
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"github.com/slidewise/slidewise/ai"
)

// Captioner implements ai.Captioner against the responses endpoint of
// an OpenAI-style service.
type Captioner struct {
	cfg    *ai.Config
	client *responsesClient
	logger *slog.Logger
}

func newCaptioner(cfg *ai.Config) *Captioner {
	return &Captioner{
		cfg:    cfg,
		client: newResponsesClient(cfg),
		logger: slog.Default().With("component", "openai-captioner"),
	}
}

// NewCaptioner creates an image captioning client for the given
// settings. Returns the ai.Captioner interface to enforce abstraction.
func NewCaptioner(cfg *ai.Config) ai.Captioner {
	cfg.Normalize()
	return newCaptioner(cfg)
}

// Enabled reports whether the settings allow captioning requests.
func (c *Captioner) Enabled() bool {
	return c.cfg.CaptioningEnabled()
}

// CaptionImage describes the given image bytes with the configured
// vision model. Missing credentials, a blank model, or empty bytes skip
// the request entirely; request errors are logged and surfaced as a
// Failed result so the caller's sweep keeps going.
func (c *Captioner) CaptionImage(ctx context.Context, data []byte, mimeType string) ai.TextResult {
	switch {
	case len(data) == 0:
		return c.skip("empty image", 0)
	case c.cfg.APIKey == "":
		return c.skip("api key not configured", len(data))
	case c.cfg.VisionModel == "":
		return c.skip("vision model not configured", len(data))
	}

	started := time.Now()
	image := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)

	text, err := c.client.createResponse(ctx, responsesRequest{
		Model: c.cfg.VisionModel,
		Input: []inputTurn{{
			Role: "user",
			Content: []inputContent{
				{Type: "input_text", Text: captionInstruction},
				{Type: "input_image", ImageURL: image},
			},
		}},
	})
	if err != nil {
		attrs := []any{"bytes", len(data), "elapsed", time.Since(started)}
		var se *statusError
		if errors.As(err, &se) {
			attrs = append(attrs, "status_code", se.StatusCode, "body", se.Body)
		} else {
			attrs = append(attrs, "error", err)
		}
		c.logger.Error("image caption failed", attrs...)
		return ai.FailedText(err.Error())
	}

	c.logger.Info("image captioned",
		"bytes", len(data),
		"chars", len(text),
		"elapsed", time.Since(started))
	return ai.OkText(text)
}

// skip records a zero-duration event so operators can tell "nothing to
// do" apart from "failed" in the logs.
func (c *Captioner) skip(reason string, size int) ai.TextResult {
	c.logger.Info("image caption skipped",
		"reason", reason,
		"bytes", size,
		"elapsed", time.Duration(0))
	return ai.DisabledText(reason)
}
