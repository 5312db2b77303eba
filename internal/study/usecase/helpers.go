package usecase

import (
	"context"

	"study-assistant/internal/model"
	"study-assistant/internal/study"
	"study-assistant/internal/study/prompt"
	"study-assistant/pkg/llmprovider"
)

// Question count bounds for quiz generation, matching the UI slider.
const (
	MinQuizQuestions     = 3
	MaxQuizQuestions     = 20
	DefaultQuizQuestions = 5
)

// Selector defaults applied when a request omits the field. These
// mirror the pre-selected values of the original pickers.
const (
	defaultLevel         = model.LevelSchool
	defaultStyle         = model.StyleStepByStep
	defaultSummaryLength = model.SummaryShort
	defaultDepth         = model.DepthStandard
	defaultQuizType      = model.QuizMultipleChoice
	defaultDifficulty    = model.DifficultyMedium
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// normalizeOptions fills missing option fields with session-independent
// fallbacks. The delivery layer normally supplies complete options.
func normalizeOptions(opts model.StudyOptions) model.StudyOptions {
	opts.Model = orDefault(opts.Model, model.ModelGeminiFlash)
	opts.StudyMode = orDefault(opts.StudyMode, model.StudyModeBalanced)
	return opts
}

func clampQuestions(n int) int {
	if n == 0 {
		return DefaultQuizQuestions
	}
	if n < MinQuizQuestions {
		return MinQuizQuestions
	}
	if n > MaxQuizQuestions {
		return MaxQuizQuestions
	}
	return n
}

// dispatch performs the single model call for a built prompt pair and
// maps the provider response onto the dispatch output. No retries: one
// invocation, one outbound call at most.
func (uc *implUseCase) dispatch(ctx context.Context, opts model.StudyOptions, p prompt.Pair) (study.DispatchOutput, error) {
	resp, err := uc.llm.Generate(ctx, opts.Model, &llmprovider.Request{
		SystemPrompt: p.System,
		UserPrompt:   p.User,
		Temperature:  opts.Temperature,
	})
	if err != nil {
		return study.DispatchOutput{}, err
	}

	out := study.DispatchOutput{
		Text:     resp.Text,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}
	if resp.Usage != nil {
		out.InputTokens = resp.Usage.InputTokens
		out.OutputTokens = resp.Usage.OutputTokens
	}
	return out, nil
}
