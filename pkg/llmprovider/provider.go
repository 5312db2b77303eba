package llmprovider

import "context"

// Provider defines the interface for LLM backends.
type Provider interface {
	// GenerateContent sends a generation request and returns a response.
	// Exactly one outbound call per invocation: no retry, no caching.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string

	// Model returns the model being used
	Model() string

	// Ready reports whether the backend is usable (credential configured).
	// Pure predicate; user-facing messages belong to the delivery layer.
	Ready() bool
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
