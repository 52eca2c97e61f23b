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

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/slidewise/slidewise/ai"
)

// MockCaptioner implements ai.Captioner for testing. It is safe for
// concurrent use; the caption sweep calls it from several goroutines.
type MockCaptioner struct {
	// CaptionFunc overrides the default behavior when set.
	CaptionFunc func(ctx context.Context, data []byte, mimeType string) ai.TextResult

	// Disabled makes every call return a Disabled result.
	Disabled bool

	calls atomic.Int64

	mu    sync.Mutex
	sizes []int
}

// NewMockCaptioner creates a captioner returning deterministic captions
// derived from the image size.
func NewMockCaptioner() *MockCaptioner {
	return &MockCaptioner{}
}

// Enabled reports the inverse of the Disabled flag.
func (m *MockCaptioner) Enabled() bool {
	return !m.Disabled
}

// CaptionImage returns the configured or default caption and records
// the call.
func (m *MockCaptioner) CaptionImage(ctx context.Context, data []byte, mimeType string) ai.TextResult {
	m.calls.Add(1)
	m.mu.Lock()
	m.sizes = append(m.sizes, len(data))
	m.mu.Unlock()

	if m.Disabled {
		return ai.DisabledText("captioning disabled")
	}
	if m.CaptionFunc != nil {
		return m.CaptionFunc(ctx, data, mimeType)
	}
	if len(data) == 0 {
		return ai.DisabledText("empty image")
	}
	return ai.OkText(fmt.Sprintf("mock caption for %d byte %s image", len(data), mimeType))
}

// CallCount returns how many times CaptionImage has been invoked.
func (m *MockCaptioner) CallCount() int {
	return int(m.calls.Load())
}

// Sizes returns the byte sizes seen by CaptionImage, in call order.
func (m *MockCaptioner) Sizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.sizes))
	copy(out, m.sizes)
	return out
}
