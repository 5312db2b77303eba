package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	"study-assistant/internal/model"
	"study-assistant/internal/session"
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

// mockUseCase returns canned results per operation.
type mockUseCase struct {
	out     study.DispatchOutput
	err     error
	lastOpt model.StudyOptions
}

func (m *mockUseCase) Answer(ctx context.Context, sc model.Scope, input study.AnswerInput) (study.DispatchOutput, error) {
	m.lastOpt = input.Options
	return m.out, m.err
}

func (m *mockUseCase) Summarize(ctx context.Context, sc model.Scope, input study.SummarizeInput) (study.DispatchOutput, error) {
	m.lastOpt = input.Options
	return m.out, m.err
}

func (m *mockUseCase) TopicNotes(ctx context.Context, sc model.Scope, input study.TopicNotesInput) (study.DispatchOutput, error) {
	m.lastOpt = input.Options
	return m.out, m.err
}

func (m *mockUseCase) Quiz(ctx context.Context, sc model.Scope, input study.QuizInput) (study.DispatchOutput, error) {
	m.lastOpt = input.Options
	return m.out, m.err
}

func newTestRouter(uc study.UseCase) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	sessions := session.NewManager(l, time.Hour, 100, model.StudyOptions{
		Model:       model.ModelGeminiFlash,
		Temperature: 0.7,
		StudyMode:   model.StudyModeBalanced,
	}, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterRoutes(api, New(l, uc), middleware.New(l, sessions), 600)
	return r, sessions
}

func TestAnswerEndpoint(t *testing.T) {
	t.Run("happy path returns envelope with text", func(t *testing.T) {
		uc := &mockUseCase{out: study.DispatchOutput{
			Text:     "A derivative measures...",
			Provider: "gemini",
			Model:    model.ModelGeminiFlash,
		}}
		r, _ := newTestRouter(uc)

		body := `{"subject":"Calculus","question":"What is a derivative?","level":"School","style":"Simple"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/study/answer", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Header().Get("X-Session-ID") == "" {
			t.Error("expected session ID header on response")
		}

		var resp struct {
			Message string       `json:"message"`
			Data    dispatchResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Data.Text != "A derivative measures..." {
			t.Errorf("expected passthrough text, got %q", resp.Data.Text)
		}
		if uc.lastOpt.Model != model.ModelGeminiFlash {
			t.Errorf("expected session default options on input, got %+v", uc.lastOpt)
		}
	})

	t.Run("missing question is a 400", func(t *testing.T) {
		uc := &mockUseCase{}
		r, _ := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/study/answer", strings.NewReader(`{"subject":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing credential is a 503", func(t *testing.T) {
		uc := &mockUseCase{err: llmprovider.ErrMissingCredential}
		r, _ := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/study/answer", strings.NewReader(`{"question":"Why?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "credential") {
			t.Errorf("expected credential message, got %s", w.Body.String())
		}
	})

	t.Run("provider fault is a 502", func(t *testing.T) {
		uc := &mockUseCase{err: &llmprovider.ProviderError{Provider: "gemini", Err: context.DeadlineExceeded}}
		r, _ := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/study/answer", strings.NewReader(`{"question":"Why?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("session header is honored", func(t *testing.T) {
		uc := &mockUseCase{out: study.DispatchOutput{Text: "ok"}}
		r, sessions := newTestRouter(uc)

		s := sessions.Resolve("fixed-session")
		s.SetOptions(model.StudyOptions{Model: model.ModelGeminiPro, Temperature: 0.2, StudyMode: model.StudyModeExamPrep})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/study/answer", strings.NewReader(`{"question":"Why?"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "fixed-session")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Session-ID") != "fixed-session" {
			t.Errorf("expected echoed session ID, got %q", w.Header().Get("X-Session-ID"))
		}
		if uc.lastOpt.Model != model.ModelGeminiPro {
			t.Errorf("expected that session's options, got %+v", uc.lastOpt)
		}
	})
}

func TestQuizEndpoint(t *testing.T) {
	t.Run("out-of-range count rejected by binding", func(t *testing.T) {
		uc := &mockUseCase{}
		r, _ := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/study/quiz", strings.NewReader(`{"topic":"Algebra","num_questions":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
