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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/slidewise/slidewise/ai"
)

// requestTimeout bounds a single responses-endpoint call. A timeout is
// treated like any other soft failure by the callers.
const requestTimeout = 30 * time.Second

// responsesClient is a minimal client for the service's "responses"
// endpoint. It is hand-rolled on net/http because the response envelope
// varies by endpoint version and the SDKs hide the raw body; parsing it
// here lets the clients tolerate every known shape.
type responsesClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newResponsesClient(cfg *ai.Config) *responsesClient {
	return &responsesClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type responsesRequest struct {
	Model        string      `json:"model"`
	Instructions string      `json:"instructions,omitempty"`
	Input        []inputTurn `json:"input"`
}

type inputTurn struct {
	Role    string         `json:"role"`
	Content []inputContent `json:"content"`
}

type inputContent struct {
	Type     string `json:"type"` // "input_text" or "input_image"
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// responseEnvelope models the two envelope shapes the service is known
// to return: a flat top-level output_text field, and a nested list of
// output items each holding a content list. New variants get a field
// here and a branch in extractOutputText; call sites never change.
type responseEnvelope struct {
	OutputText string       `json:"output_text"`
	Output     []outputItem `json:"output"`
}

type outputItem struct {
	Content []outputContent `json:"content"`
}

type outputContent struct {
	Text string `json:"text"`
}

// statusError reports a non-2xx response, carrying the status code and
// body for the caller's failure log.
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("responses endpoint returned %d: %s", e.StatusCode, e.Body)
}

// createResponse submits one request and returns the extracted output
// text. Non-2xx statuses come back as *statusError; an envelope with no
// recognizable text is an error too. Both are soft failures to callers.
func (c *responsesClient) createResponse(ctx context.Context, req responsesRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("responses request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading responses body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &statusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	text, ok := extractOutputText(body)
	if !ok {
		return "", errors.New("no output text in response envelope")
	}
	return text, nil
}

// extractOutputText pulls the first non-empty text out of a response
// body, trying the known envelope variants in order: the flat
// output_text field first, then the nested output/content list.
func extractOutputText(body []byte) (string, bool) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false
	}

	if t := strings.TrimSpace(env.OutputText); t != "" {
		return t, true
	}
	for _, item := range env.Output {
		for _, content := range item.Content {
			if t := strings.TrimSpace(content.Text); t != "" {
				return t, true
			}
		}
	}
	return "", false
}
