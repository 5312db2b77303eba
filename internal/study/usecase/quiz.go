package usecase

import (
	"context"
	"strings"

	"study-assistant/internal/model"
	"study-assistant/internal/study"
	"study-assistant/internal/study/prompt"
)

// Quiz generates a quiz with an answer key. The question count is
// clamped to the supported range rather than rejected.
func (uc *implUseCase) Quiz(ctx context.Context, sc model.Scope, input study.QuizInput) (study.DispatchOutput, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return study.DispatchOutput{}, study.ErrEmptyQuizTopic
	}

	opts := normalizeOptions(input.Options)
	n := clampQuestions(input.NumQuestions)
	uc.l.Infof(ctx, "study.Quiz: session=%s model=%s topic=%q questions=%d", sc.SessionID, opts.Model, input.Topic, n)

	p := prompt.GenerateQuiz(
		input.Topic,
		n,
		orDefault(input.QuizType, defaultQuizType),
		orDefault(input.Difficulty, defaultDifficulty),
		opts.StudyMode,
	)

	return uc.dispatch(ctx, opts, p)
}
