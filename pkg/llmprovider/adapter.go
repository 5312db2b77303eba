package llmprovider

import (
	"context"

	"study-assistant/pkg/gemini"
	"study-assistant/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
	model  string
}

// NewGeminiAdapter creates a new Gemini adapter. A nil client marks the
// backend as not ready (credential absent); generation then fails fast
// without network I/O.
func NewGeminiAdapter(client gemini.IGemini, model string) *GeminiAdapter {
	return &GeminiAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if !a.Ready() {
		return nil, ErrMissingCredential
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemPrompt,
		Prompt:            req.UserPrompt,
		Temperature:       req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.model
}

// Ready implements Provider interface
func (a *GeminiAdapter) Ready() bool {
	return a.client != nil
}

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
	model  string
}

// NewOpenAIAdapter creates a new OpenAI adapter. A nil client marks the
// backend as not ready.
func NewOpenAIAdapter(client openai.IOpenAI, model string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if !a.Ready() {
		return nil, ErrMissingCredential
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: req.SystemPrompt,
		Prompt:            req.UserPrompt,
		Temperature:       req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

// Ready implements Provider interface
func (a *OpenAIAdapter) Ready() bool {
	return a.client != nil
}
