package usecase

import (
	"context"
	"strings"

	"study-assistant/internal/model"
	"study-assistant/internal/study"
	"study-assistant/internal/study/prompt"
)

// Answer answers a study question. Empty questions are rejected before
// any prompt is built, so no network call happens.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input study.AnswerInput) (study.DispatchOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return study.DispatchOutput{}, study.ErrEmptyQuestion
	}

	opts := normalizeOptions(input.Options)
	uc.l.Infof(ctx, "study.Answer: session=%s model=%s subject=%q", sc.SessionID, opts.Model, input.Subject)

	p := prompt.AnswerQuestion(
		input.Subject,
		input.Question,
		orDefault(input.Level, defaultLevel),
		orDefault(input.Style, defaultStyle),
		opts.StudyMode,
	)

	return uc.dispatch(ctx, opts, p)
}
