package usecase

import (
	"study-assistant/internal/reminder/repository"
	"study-assistant/pkg/log"
)

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new reminder UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
