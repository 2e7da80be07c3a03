package llm

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no AI backend is configured.
var ErrUnavailable = errors.New("llm: provider unavailable")

type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

type Provider interface {
	// Complete returns the full text answer for one prompt.
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}

// Unavailable stands in when no API key is set so callers always take their fallback.
type Unavailable struct{}

func (Unavailable) Complete(context.Context, Request) (string, error) { return "", ErrUnavailable }
func (Unavailable) Close() error                                      { return nil }
