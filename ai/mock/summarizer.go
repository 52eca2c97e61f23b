package mock

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/slidewise/slidewise/ai"
)

// MockSummarizer implements ai.Summarizer for testing.
type MockSummarizer struct {
	// SummarizeFunc overrides the default behavior when set.
	SummarizeFunc func(ctx context.Context, tableText string) ai.TextResult

	// Disabled makes every call return a Disabled result.
	Disabled bool

	calls atomic.Int64

	mu     sync.Mutex
	inputs []string
}

// NewMockSummarizer creates a summarizer that echoes a fixed prefix
// plus the first line of its input.
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Enabled reports the inverse of the Disabled flag.
func (m *MockSummarizer) Enabled() bool {
	return !m.Disabled
}

// SummarizeTable returns the configured or default summary and records
// the call.
func (m *MockSummarizer) SummarizeTable(ctx context.Context, tableText string) ai.TextResult {
	m.calls.Add(1)
	m.mu.Lock()
	m.inputs = append(m.inputs, tableText)
	m.mu.Unlock()

	if m.Disabled {
		return ai.DisabledText("summarization disabled")
	}
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, tableText)
	}
	if tableText == "" {
		return ai.DisabledText("empty table text")
	}
	return ai.OkText("mock summary: " + firstLine(tableText))
}

// CallCount returns how many times SummarizeTable has been invoked.
func (m *MockSummarizer) CallCount() int {
	return int(m.calls.Load())
}

// Inputs returns the table texts seen by SummarizeTable, in call order.
func (m *MockSummarizer) Inputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.inputs))
	copy(out, m.inputs)
	return out
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
