package usecase

import (
	"context"
	"strings"

	"study-assistant/internal/model"
	"study-assistant/internal/study"
	"study-assistant/internal/study/prompt"
)

// TopicNotes produces structured study notes on a topic.
func (uc *implUseCase) TopicNotes(ctx context.Context, sc model.Scope, input study.TopicNotesInput) (study.DispatchOutput, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return study.DispatchOutput{}, study.ErrEmptyTopic
	}

	opts := normalizeOptions(input.Options)
	uc.l.Infof(ctx, "study.TopicNotes: session=%s model=%s topic=%q", sc.SessionID, opts.Model, input.Topic)

	p := prompt.GenerateTopicNotes(
		input.Topic,
		orDefault(input.Depth, defaultDepth),
		opts.StudyMode,
	)

	return uc.dispatch(ctx, opts, p)
}
