// Package llm turns natural-language requests into schedule suggestions using an LLM provider.
package llm

import (
	"context"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for LLM providers.
type Client interface {
	// Chat sends messages to the LLM and returns the response.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends messages and decodes the JSON part of the response into result.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}
