package llmprovider

import (
	"context"
	"fmt"
)

// Persona framing for the mentor backend. The persona is fixed; the
// caller's prompts become the study context it works from.
const (
	mentorSystemPrompt = "Role: Study Assistant.\n" +
		"Goal: Help students understand concepts, answer questions clearly, and give step-by-step explanations.\n" +
		"Backstory: You are a friendly expert tutor who adapts explanations to the student's level and focuses on clarity.\n" +
		"Expected output: A concise but clear answer with explanations and, when helpful, step-by-step reasoning and examples."

	mentorTaskPrompt = "Read the study context and the student's question, then give a clear, structured explanation with examples.\n\n%s\n\n%s"
)

// MentorProvider is the secondary agent-style backend. It frames every
// request with a study-mentor persona and delegates the actual
// generation to an underlying provider. Same Provider contract as the
// direct backends; selected per model via config, never a fallback.
type MentorProvider struct {
	backend Provider
}

// NewMentorProvider wraps backend with the mentor persona.
func NewMentorProvider(backend Provider) *MentorProvider {
	return &MentorProvider{backend: backend}
}

// GenerateContent implements Provider interface
func (p *MentorProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if !p.Ready() {
		return nil, ErrMissingCredential
	}

	framed := &Request{
		SystemPrompt: mentorSystemPrompt,
		UserPrompt:   fmt.Sprintf(mentorTaskPrompt, req.SystemPrompt, req.UserPrompt),
		Temperature:  req.Temperature,
	}

	resp, err := p.backend.GenerateContent(ctx, framed)
	if err != nil {
		return nil, err
	}

	resp.ProviderName = p.Name()
	return resp, nil
}

// Name returns provider name
func (p *MentorProvider) Name() string {
	return "mentor"
}

// Model returns model name
func (p *MentorProvider) Model() string {
	return p.backend.Model()
}

// Ready implements Provider interface
func (p *MentorProvider) Ready() bool {
	return p.backend.Ready()
}
