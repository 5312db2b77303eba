package usecase

import (
	"context"

	"study-assistant/pkg/llmprovider"
	"study-assistant/pkg/log"
)

// Generator is the model-dispatch surface the usecase needs. Satisfied
// by *llmprovider.Registry.
type Generator interface {
	Generate(ctx context.Context, model string, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of study.UseCase.
type implUseCase struct {
	llm Generator
	l   log.Logger
}

// New creates a new study UseCase implementation.
func New(llm Generator, l log.Logger) *implUseCase {
	return &implUseCase{
		llm: llm,
		l:   l,
	}
}
