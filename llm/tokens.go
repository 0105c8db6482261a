// Package llm holds model-side helpers: availability checks against the
// provider API and prompt token counting.
package llm

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncoding is used when a model has no known encoding.
const fallbackEncoding = "cl100k_base"

// TokenCount is the size of a text for a given model.
type TokenCount struct {
	Tokens    int
	Encoding  string
	Estimated bool
}

type cachedEncoding struct {
	enc  *tiktoken.Tiktoken
	name string
}

var (
	encodingsMu sync.Mutex
	encodings   = map[string]cachedEncoding{}
)

// encodingFor returns a cached encoder for model, or nil when tiktoken
// cannot provide one (unknown model and no BPE data available).
func encodingFor(model string) (*tiktoken.Tiktoken, string) {
	encodingsMu.Lock()
	defer encodingsMu.Unlock()

	if cached, ok := encodings[model]; ok {
		return cached.enc, cached.name
	}

	enc, err := tiktoken.EncodingForModel(model)
	name := model
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		name = fallbackEncoding
	}
	if err != nil {
		return nil, ""
	}
	encodings[model] = cachedEncoding{enc: enc, name: name}
	return enc, name
}

// CountTokens counts text's tokens with the model's encoding.
// Falls back to EstimateFast when no encoding is available.
func CountTokens(model, text string) TokenCount {
	if enc, name := encodingFor(model); enc != nil {
		return TokenCount{
			Tokens:   len(enc.Encode(text, nil, nil)),
			Encoding: name,
		}
	}
	return TokenCount{Tokens: EstimateFast(text), Estimated: true}
}

// EstimateFast returns a heuristic token estimate: max(runes/4, word_count).
func EstimateFast(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	runes := len([]rune(trimmed))
	words := len(strings.Fields(trimmed))
	estimate := runes / 4
	if estimate < words {
		estimate = words
	}
	if estimate == 0 {
		estimate = 1
	}
	return estimate
}
