package llm

import (
	"context"
	"time"
)

// CompletionRequest asks a model for one structured completion. Schema is a
// JSON-Schema map the response must satisfy; providers that support
// structured output pass it through, others embed it in the prompt.
type CompletionRequest struct {
	System  string
	Prompt  string
	Schema  map[string]any
	Timeout time.Duration
}

// CompletionResult carries the raw JSON content plus token accounting.
type CompletionResult struct {
	Raw              []byte
	PromptTokens     int
	CompletionTokens int
}

// Provider is the interface model-assisted extraction depends on.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}
