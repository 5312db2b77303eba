package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"study-assistant/internal/model"
	"study-assistant/internal/reminder/repository"
	"study-assistant/pkg/log"
)

// implRepository keeps per-session reminder lists in process memory.
// Append-only growth per session; the whole list drops when the
// session is cleared or evicted.
type implRepository struct {
	l  log.Logger
	mu sync.RWMutex
	// reminders maps session ID to that session's ordered list.
	reminders map[string][]model.Reminder
}

// New creates a new in-memory reminder repository.
func New(l log.Logger) *implRepository {
	return &implRepository{
		l:         l,
		reminders: make(map[string][]model.Reminder),
	}
}

var _ repository.Repository = (*implRepository)(nil)

func (r *implRepository) Append(ctx context.Context, sessionID string, opt repository.AppendOptions) (model.Reminder, error) {
	rem := model.Reminder{
		ID:        uuid.NewString(),
		Text:      opt.Text,
		Date:      opt.Date,
		Clock:     opt.Clock,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.reminders[sessionID] = append(r.reminders[sessionID], rem)
	r.mu.Unlock()

	return rem, nil
}

// List returns a snapshot copy in insertion order.
func (r *implRepository) List(ctx context.Context, sessionID string) ([]model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.reminders[sessionID]
	out := make([]model.Reminder, len(list))
	copy(out, list)
	return out, nil
}

// ClearAll empties the session's list. Clearing a session that has no
// reminders is a no-op, not an error.
func (r *implRepository) ClearAll(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.reminders, sessionID)
	r.mu.Unlock()
	return nil
}
