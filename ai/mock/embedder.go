package mock

import (
	"context"
	"hash/fnv"
	"strings"
	"sync/atomic"

	"github.com/slidewise/slidewise/ai"
)

// mockDimensions keeps the deterministic vectors small; tests only care
// about stability and distinctness, not realism.
const mockDimensions = 16

// MockEmbedder implements ai.Embedder for testing.
type MockEmbedder struct {
	// EmbedFunc overrides the default behavior when set.
	EmbedFunc func(ctx context.Context, text string) ai.VectorResult

	// Disabled makes every call return a Disabled result.
	Disabled bool

	calls atomic.Int64
}

// NewMockEmbedder creates an embedder returning deterministic vectors
// derived from the input text.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// Enabled reports the inverse of the Disabled flag.
func (m *MockEmbedder) Enabled() bool {
	return !m.Disabled
}

// EmbedText returns the configured or default vector and records the
// call. The default is deterministic: the same text always yields the
// same vector, and different texts almost always differ.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ai.VectorResult {
	m.calls.Add(1)

	if m.Disabled {
		return ai.DisabledVector("embedding disabled")
	}
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	if strings.TrimSpace(text) == "" {
		return ai.DisabledVector("empty text")
	}
	return ai.OkVector(deterministicVector(text))
}

// CallCount returns how many times EmbedText has been invoked.
func (m *MockEmbedder) CallCount() int {
	return int(m.calls.Load())
}

func deterministicVector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, mockDimensions)
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		vec[i] = float32(int64(seed>>32))/float32(1<<31)*0.5 + 0.5
	}
	return vec
}
