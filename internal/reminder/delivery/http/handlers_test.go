package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	"study-assistant/internal/model"
	reminderInmem "study-assistant/internal/reminder/repository/inmem"
	reminderUC "study-assistant/internal/reminder/usecase"
	"study-assistant/internal/session"
	"study-assistant/pkg/datemath"
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

// newTestRouter wires the real usecase and in-memory store so the
// tests cover the whole reminder path below the transport.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	sessions := session.NewManager(l, time.Hour, 100, model.StudyOptions{}, nil)
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	uc := reminderUC.New(reminderInmem.New(l), l)

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterRoutes(api, New(l, uc, dates), middleware.New(l, sessions))
	return r
}

func doJSON(r *gin.Engine, method, path, body, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddReminder(t *testing.T) {
	t.Run("add returns 1-indexed order and defaults", func(t *testing.T) {
		r := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/reminders", `{"text":"Review algebra"}`, "s1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data reminderResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if resp.Data.Order != 1 {
			t.Errorf("expected order 1, got %d", resp.Data.Order)
		}
		if resp.Data.Time != "18:00" {
			t.Errorf("expected default time 18:00, got %q", resp.Data.Time)
		}
		if resp.Data.ID == "" {
			t.Error("expected a reminder ID")
		}
	})

	t.Run("relative date resolves to tomorrow", func(t *testing.T) {
		r := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/reminders", `{"text":"Mock exam","date":"tomorrow","time":"09:30"}`, "s1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		want := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		if !strings.Contains(w.Body.String(), fmt.Sprintf("%q", want)) {
			t.Errorf("expected date %s in body: %s", want, w.Body.String())
		}
	})

	t.Run("unparseable date is a 400", func(t *testing.T) {
		r := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/reminders", `{"text":"x","date":"someday"}`, "s1")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("whitespace-only text is a 400", func(t *testing.T) {
		r := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/reminders", `{"text":"   "}`, "s1")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestListAndClearReminders(t *testing.T) {
	r := newTestRouter(t)

	for _, text := range []string{"first", "second", "third"} {
		w := doJSON(r, http.MethodPost, "/api/v1/reminders", `{"text":"`+text+`"}`, "s1")
		if w.Code != http.StatusOK {
			t.Fatalf("add %q: got %d", text, w.Code)
		}
	}
	// Another session's reminder must stay invisible to s1.
	doJSON(r, http.MethodPost, "/api/v1/reminders", `{"text":"other"}`, "s2")

	w := doJSON(r, http.MethodGet, "/api/v1/reminders", "", "s1")
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}

	var resp struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Data.Total != 3 {
		t.Fatalf("expected 3 reminders, got %d", resp.Data.Total)
	}
	for i, rem := range resp.Data.Reminders {
		if rem.Order != i+1 {
			t.Errorf("expected order %d, got %d", i+1, rem.Order)
		}
	}
	if resp.Data.Reminders[0].Text != "first" || resp.Data.Reminders[2].Text != "third" {
		t.Errorf("insertion order not preserved: %+v", resp.Data.Reminders)
	}

	if w := doJSON(r, http.MethodDelete, "/api/v1/reminders", "", "s1"); w.Code != http.StatusOK {
		t.Fatalf("clear: got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/reminders", "", "s1")
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Total != 0 {
		t.Errorf("expected empty list after clear, got %d", resp.Data.Total)
	}

	// s2 is untouched by s1's clear.
	w = doJSON(r, http.MethodGet, "/api/v1/reminders", "", "s2")
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Total != 1 {
		t.Errorf("expected 1 reminder in other session, got %d", resp.Data.Total)
	}
}
