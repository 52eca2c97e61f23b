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


package mock

import "github.com/slidewise/slidewise/ai"

// MockProvider implements ai.Provider with mock clients for testing.
type MockProvider struct {
	captioner  *MockCaptioner
	summarizer *MockSummarizer
	embedder   *MockEmbedder
	closed     bool
}

// NewMockProvider creates a provider whose clients return deterministic
// defaults until configured otherwise.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		captioner:  NewMockCaptioner(),
		summarizer: NewMockSummarizer(),
		embedder:   NewMockEmbedder(),
	}
}

// Captioner returns the mock captioning client.
func (p *MockProvider) Captioner() ai.Captioner {
	return p.captioner
}

// Summarizer returns the mock summarization client.
func (p *MockProvider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// Embedder returns the mock embedding client.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockCaptioner returns the underlying mock for test configuration.
func (p *MockProvider) GetMockCaptioner() *MockCaptioner {
	return p.captioner
}

// GetMockSummarizer returns the underlying mock for test configuration.
func (p *MockProvider) GetMockSummarizer() *MockSummarizer {
	return p.summarizer
}

// GetMockEmbedder returns the underlying mock for test configuration.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}
