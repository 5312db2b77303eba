package usecase

import (
	"context"
	"strings"

	"study-assistant/internal/model"
	"study-assistant/internal/study"
	"study-assistant/internal/study/prompt"
)

// Summarize condenses pasted study material into notes.
func (uc *implUseCase) Summarize(ctx context.Context, sc model.Scope, input study.SummarizeInput) (study.DispatchOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return study.DispatchOutput{}, study.ErrEmptyText
	}

	opts := normalizeOptions(input.Options)
	uc.l.Infof(ctx, "study.Summarize: session=%s model=%s chars=%d", sc.SessionID, opts.Model, len(input.Text))

	p := prompt.SummarizeText(
		input.Text,
		orDefault(input.SummaryLength, defaultSummaryLength),
		input.HighlightKeyTerms,
		opts.StudyMode,
	)

	return uc.dispatch(ctx, opts, p)
}
