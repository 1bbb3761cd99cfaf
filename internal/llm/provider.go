// Package llm provides the generative-text provider used by the Q&A page.
package llm

import (
	"context"
	"errors"
)

// Common provider errors.
var (
	ErrNoAPIKey      = errors.New("llm: no API key configured")
	ErrProviderDown  = errors.New("llm: provider unreachable")
	ErrRateLimit     = errors.New("llm: rate limited")
	ErrInvalidModel  = errors.New("llm: invalid model")
	ErrEmptyResponse = errors.New("llm: empty response")
)

// TextProvider answers a single free-text prompt. No conversation history
// is kept between calls.
type TextProvider interface {
	// Generate forwards the prompt verbatim and returns the model's
	// answer as raw markdown text.
	Generate(ctx context.Context, prompt string) (string, error)
}
