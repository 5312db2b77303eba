package reminder

import (
	"context"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Add appends a reminder to the caller's session list.
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.Reminder, error)
	// List returns the session's reminders in insertion order.
	List(ctx context.Context, sc model.Scope) ([]model.Reminder, error)
	// ClearAll drops every reminder in the session. Irreversible.
	ClearAll(ctx context.Context, sc model.Scope) error
}
