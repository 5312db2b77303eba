package usecase

import (
	"context"
	"strings"
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
	"study-assistant/internal/reminder/repository"
)

// defaultClock is the target time used when the caller sets none.
const defaultClock = "18:00"

// Add appends a reminder to the session's list. Whitespace-only text
// is rejected before touching the store.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input reminder.AddInput) (model.Reminder, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Reminder{}, reminder.ErrEmptyText
	}

	date := input.Date
	if date.IsZero() {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	clock := input.Clock
	if clock == "" {
		clock = defaultClock
	}

	rem, err := uc.repo.Append(ctx, sc.SessionID, repository.AppendOptions{
		Text:  text,
		Date:  date,
		Clock: clock,
	})
	if err != nil {
		return model.Reminder{}, err
	}

	uc.l.Infof(ctx, "reminder.Add: session=%s id=%s", sc.SessionID, rem.ID)
	return rem, nil
}

// List returns the session's reminders in insertion order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Reminder, error) {
	return uc.repo.List(ctx, sc.SessionID)
}

// ClearAll drops every reminder in the session.
func (uc *implUseCase) ClearAll(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.ClearAll(ctx, sc.SessionID); err != nil {
		return err
	}
	uc.l.Infof(ctx, "reminder.ClearAll: session=%s", sc.SessionID)
	return nil
}
