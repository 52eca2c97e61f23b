package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidewise/slidewise/ai"
)

func TestCaptionImageSuccess(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"output_text":"A whiteboard covered in sticky notes"}`))
	}))
	defer server.Close()

	captioner := newCaptioner(&ai.Config{
		APIKey:      "sk-test",
		VisionModel: "gpt-4.1-mini",
		BaseURL:     server.URL,
	})

	res := captioner.CaptionImage(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47}, "image/png")

	require.True(t, res.Ok())
	assert.Equal(t, "A whiteboard covered in sticky notes", res.Text)

	var req responsesRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "gpt-4.1-mini", req.Model)
	require.Len(t, req.Input, 1)
	require.Len(t, req.Input[0].Content, 2)
	assert.Equal(t, "input_text", req.Input[0].Content[0].Type)
	assert.Equal(t, "input_image", req.Input[0].Content[1].Type)
	assert.True(t, strings.HasPrefix(req.Input[0].Content[1].ImageURL, "data:image/png;base64,"))
}

func TestCaptionImageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	captioner := newCaptioner(&ai.Config{
		APIKey:      "sk-test",
		VisionModel: "gpt-4.1-mini",
		BaseURL:     server.URL,
	})

	res := captioner.CaptionImage(context.Background(), []byte{0x01}, "image/png")

	assert.Equal(t, ai.StatusFailed, res.Status)
	assert.Contains(t, res.Reason, "503")
}

func TestCaptionImageDisabled(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"output_text":"should never happen"}`))
	}))
	defer server.Close()

	tests := []struct {
		name string
		cfg  *ai.Config
		data []byte
	}{
		{
			name: "blank api key",
			cfg:  &ai.Config{VisionModel: "gpt-4.1-mini", BaseURL: server.URL},
			data: []byte{0x01},
		},
		{
			name: "blank vision model",
			cfg:  &ai.Config{APIKey: "sk-test", BaseURL: server.URL},
			data: []byte{0x01},
		},
		{
			name: "empty image bytes",
			cfg:  &ai.Config{APIKey: "sk-test", VisionModel: "gpt-4.1-mini", BaseURL: server.URL},
			data: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captioner := newCaptioner(tt.cfg)
			res := captioner.CaptionImage(context.Background(), tt.data, "image/png")
			assert.Equal(t, ai.StatusDisabled, res.Status)
			assert.Empty(t, res.Text)
		})
	}

	assert.Equal(t, int64(0), calls.Load(), "disabled captioner must not reach the network")
}

// recordingHandler collects log messages so tests can assert on skip
// logging behavior.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.messages {
		if m == msg {
			n++
		}
	}
	return n
}

func TestCaptionImageSkipLogsOnce(t *testing.T) {
	handler := &recordingHandler{}
	prev := slog.Default()
	slog.SetDefault(slog.New(handler))
	t.Cleanup(func() { slog.SetDefault(prev) })

	captioner := newCaptioner(&ai.Config{VisionModel: "gpt-4.1-mini"})
	res := captioner.CaptionImage(context.Background(), []byte{0x01}, "image/png")

	assert.Equal(t, ai.StatusDisabled, res.Status)
	assert.Equal(t, 1, handler.count("image caption skipped"))
	assert.Zero(t, handler.count("image caption failed"))
}
