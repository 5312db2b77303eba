package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"study-assistant/internal/model"
	"study-assistant/internal/study"
	"study-assistant/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockGenerator records every dispatch it receives.
type mockGenerator struct {
	calls     int
	lastModel string
	lastReq   *llmprovider.Request
	resp      *llmprovider.Response
	err       error
}

func (m *mockGenerator) Generate(ctx context.Context, modelName string, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastModel = modelName
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func okResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Text:         text,
		ProviderName: "gemini",
		ModelName:    model.ModelGeminiFlash,
		Usage:        &llmprovider.Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	}
}

func balancedOptions() model.StudyOptions {
	return model.StudyOptions{
		Model:       model.ModelGeminiFlash,
		Temperature: 0.7,
		StudyMode:   model.StudyModeBalanced,
	}
}

func TestAnswer(t *testing.T) {
	sc := model.Scope{SessionID: "s1"}

	t.Run("happy path forwards model text unchanged", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("A derivative measures...")}
		uc := New(gen, &mockLogger{})

		out, err := uc.Answer(context.Background(), sc, study.AnswerInput{
			Subject:  "Calculus",
			Question: "What is a derivative?",
			Level:    "School",
			Style:    "Simple",
			Options:  balancedOptions(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text != "A derivative measures..." {
			t.Errorf("expected model text passthrough, got %q", out.Text)
		}
		if gen.calls != 1 {
			t.Errorf("expected exactly one model call, got %d", gen.calls)
		}
		if gen.lastModel != model.ModelGeminiFlash {
			t.Errorf("expected dispatch to %s, got %s", model.ModelGeminiFlash, gen.lastModel)
		}
		if gen.lastReq.Temperature != 0.7 {
			t.Errorf("expected temperature 0.7, got %v", gen.lastReq.Temperature)
		}
		if !strings.Contains(gen.lastReq.SystemPrompt, "Explanation style: Simple.") {
			t.Errorf("system prompt missing style: %q", gen.lastReq.SystemPrompt)
		}
		if gen.lastReq.UserPrompt != "Subject: Calculus\nQuestion: What is a derivative?" {
			t.Errorf("unexpected user prompt: %q", gen.lastReq.UserPrompt)
		}
	})

	t.Run("empty question makes zero model calls", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("unused")}
		uc := New(gen, &mockLogger{})

		_, err := uc.Answer(context.Background(), sc, study.AnswerInput{
			Question: "   \n\t  ",
			Options:  balancedOptions(),
		})
		if !errors.Is(err, study.ErrEmptyQuestion) {
			t.Errorf("expected ErrEmptyQuestion, got %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("expected zero model calls, got %d", gen.calls)
		}
	})

	t.Run("provider error is forwarded unchanged", func(t *testing.T) {
		provErr := &llmprovider.ProviderError{Provider: "gemini", Err: errors.New("boom")}
		gen := &mockGenerator{err: provErr}
		uc := New(gen, &mockLogger{})

		_, err := uc.Answer(context.Background(), sc, study.AnswerInput{
			Question: "Why?",
			Options:  balancedOptions(),
		})
		var pe *llmprovider.ProviderError
		if !errors.As(err, &pe) {
			t.Errorf("expected ProviderError passthrough, got %v", err)
		}
		if gen.calls != 1 {
			t.Errorf("expected a single call with no retry, got %d", gen.calls)
		}
	})
}

func TestSummarize(t *testing.T) {
	sc := model.Scope{SessionID: "s1"}

	t.Run("text rides in the user prompt verbatim", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("summary")}
		uc := New(gen, &mockLogger{})

		text := "Long lecture notes about photosynthesis."
		_, err := uc.Summarize(context.Background(), sc, study.SummarizeInput{
			Text:              text,
			SummaryLength:     "Medium",
			HighlightKeyTerms: true,
			Options:           balancedOptions(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.lastReq.UserPrompt != text {
			t.Errorf("expected raw text as user prompt, got %q", gen.lastReq.UserPrompt)
		}
		if !strings.Contains(gen.lastReq.SystemPrompt, "- Summary length: Medium.") {
			t.Errorf("system prompt missing length: %q", gen.lastReq.SystemPrompt)
		}
		if !strings.Contains(gen.lastReq.SystemPrompt, "- Highlight key terms: yes.") {
			t.Errorf("system prompt missing highlight flag: %q", gen.lastReq.SystemPrompt)
		}
	})

	t.Run("whitespace-only text rejected without network", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("unused")}
		uc := New(gen, &mockLogger{})

		_, err := uc.Summarize(context.Background(), sc, study.SummarizeInput{Text: "  ", Options: balancedOptions()})
		if !errors.Is(err, study.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("expected zero model calls, got %d", gen.calls)
		}
	})
}

func TestTopicNotes(t *testing.T) {
	sc := model.Scope{SessionID: "s1"}

	t.Run("builds notes prompt at requested depth", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("notes")}
		uc := New(gen, &mockLogger{})

		_, err := uc.TopicNotes(context.Background(), sc, study.TopicNotesInput{
			Topic:   "French Revolution",
			Depth:   "In-depth",
			Options: balancedOptions(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.lastReq.UserPrompt != "Create study notes on: French Revolution" {
			t.Errorf("unexpected user prompt: %q", gen.lastReq.UserPrompt)
		}
		if !strings.Contains(gen.lastReq.SystemPrompt, "- Depth: In-depth.") {
			t.Errorf("system prompt missing depth: %q", gen.lastReq.SystemPrompt)
		}
	})

	t.Run("empty topic rejected", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("unused")}
		uc := New(gen, &mockLogger{})

		_, err := uc.TopicNotes(context.Background(), sc, study.TopicNotesInput{Topic: "", Options: balancedOptions()})
		if !errors.Is(err, study.ErrEmptyTopic) {
			t.Errorf("expected ErrEmptyTopic, got %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("expected zero model calls, got %d", gen.calls)
		}
	})
}

func TestQuiz(t *testing.T) {
	sc := model.Scope{SessionID: "s1"}

	t.Run("question count appears in prompt", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("quiz")}
		uc := New(gen, &mockLogger{})

		_, err := uc.Quiz(context.Background(), sc, study.QuizInput{
			Topic:        "Photosynthesis",
			NumQuestions: 5,
			QuizType:     "Multiple choice",
			Difficulty:   "Medium",
			Options:      balancedOptions(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(gen.lastReq.UserPrompt, "Create a 5-question quiz on the topic: Photosynthesis.") {
			t.Errorf("unexpected user prompt: %q", gen.lastReq.UserPrompt)
		}
	})

	t.Run("question count clamps to supported range", func(t *testing.T) {
		cases := []struct {
			in   int
			want string
		}{
			{0, "a 5-question quiz"},
			{1, "a 3-question quiz"},
			{50, "a 20-question quiz"},
		}
		for _, tc := range cases {
			gen := &mockGenerator{resp: okResponse("quiz")}
			uc := New(gen, &mockLogger{})

			_, err := uc.Quiz(context.Background(), sc, study.QuizInput{
				Topic:        "Algebra",
				NumQuestions: tc.in,
				Options:      balancedOptions(),
			})
			if err != nil {
				t.Fatalf("unexpected error for count %d: %v", tc.in, err)
			}
			if !strings.Contains(gen.lastReq.UserPrompt, tc.want) {
				t.Errorf("count %d: expected %q in prompt, got %q", tc.in, tc.want, gen.lastReq.UserPrompt)
			}
		}
	})

	t.Run("empty topic rejected", func(t *testing.T) {
		gen := &mockGenerator{resp: okResponse("unused")}
		uc := New(gen, &mockLogger{})

		_, err := uc.Quiz(context.Background(), sc, study.QuizInput{Topic: "\t", Options: balancedOptions()})
		if !errors.Is(err, study.ErrEmptyQuizTopic) {
			t.Errorf("expected ErrEmptyQuizTopic, got %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("expected zero model calls, got %d", gen.calls)
		}
	})
}
