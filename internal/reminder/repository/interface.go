package repository

import (
	"context"
	"time"

	"study-assistant/internal/model"
)

// Repository is the data access interface for session reminders.
// Implementations are in-memory only; reminders never persist.
type Repository interface {
	Append(ctx context.Context, sessionID string, opt AppendOptions) (model.Reminder, error)
	List(ctx context.Context, sessionID string) ([]model.Reminder, error)
	ClearAll(ctx context.Context, sessionID string) error
}

// AppendOptions defines the fields of a new reminder.
type AppendOptions struct {
	Text  string
	Date  time.Time
	Clock string
}
