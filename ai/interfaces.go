package ai

import "context"

// Captioner produces natural-language captions for images using a
// vision-capable model. Implementations must be thread-safe: the
// caption sweep issues requests concurrently.
type Captioner interface {
	// Enabled reports whether captioning can issue requests at all.
	// A disabled captioner lets the sweep log a single skip event
	// instead of one per picture.
	Enabled() bool

	// CaptionImage describes the given image bytes. Failures are soft:
	// the result carries the outcome, never an error.
	CaptionImage(ctx context.Context, data []byte, mimeType string) TextResult
}

// Summarizer produces natural-language summaries of canonicalized table
// text using a text-capable model.
type Summarizer interface {
	// Enabled reports whether summarization can issue requests at all.
	Enabled() bool

	// SummarizeTable summarizes the given table text for semantic
	// retrieval. Blank input yields a Disabled result without any
	// network activity.
	SummarizeTable(ctx context.Context, tableText string) TextResult
}

// Embedder generates vector embeddings from text for semantic
// similarity search. Implementations must be thread-safe.
type Embedder interface {
	// Enabled reports whether embedding can issue requests at all.
	Enabled() bool

	// EmbedText generates a vector embedding for a single text string.
	// Blank input yields a Disabled result without any network activity.
	EmbedText(ctx context.Context, text string) VectorResult
}

// Provider aggregates the model-service clients for convenient
// initialization and lifecycle management. The returned clients share
// one settings snapshot and are safe for concurrent use.
type Provider interface {
	// Captioner returns the image captioning client.
	Captioner() Captioner

	// Summarizer returns the table summarization client.
	Summarizer() Summarizer

	// Embedder returns the text embedding client.
	Embedder() Embedder

	// Close releases resources held by the provider and its clients.
	Close() error
}
