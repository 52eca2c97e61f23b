package openai

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// summaryTokenBudget caps the table text sent for summarization.
	// Well under the model context window so the instructions and the
	// generated summary always fit.
	summaryTokenBudget = 4000

	// cl100k_base is the tokenizer shared by the service's current
	// model families.
	summaryEncoding = "cl100k_base"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

func loadEncoding() *tiktoken.Tiktoken {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(summaryEncoding)
		if err != nil {
			slog.Default().Warn("tokenizer unavailable, falling back to character bounding",
				"encoding", summaryEncoding,
				"error", err)
			return
		}
		encoding = enc
	})
	return encoding
}

// boundTokens truncates text to at most budget tokens. Inputs that
// cannot exceed the budget (a token is at least one byte) return
// unchanged without touching the tokenizer. If the tokenizer cannot be
// loaded the text is bounded by characters at four per token, which
// over-admits but never blocks the request.
func boundTokens(text string, budget int) string {
	if len(text) <= budget {
		return text
	}

	enc := loadEncoding()
	if enc == nil {
		runes := []rune(text)
		if len(runes) <= budget*4 {
			return text
		}
		return string(runes[:budget*4])
	}

	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return enc.Decode(tokens[:budget])
}
