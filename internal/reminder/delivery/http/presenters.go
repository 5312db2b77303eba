package http

import (
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
	"study-assistant/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	Text string `json:"text" binding:"required"`
	// Date as "2006-01-02" or a relative phrase like "tomorrow" or
	// "next monday"; defaults to today.
	Date string `json:"date"`
	// Time in "15:04" form; defaults to 18:00.
	Time string `json:"time" binding:"omitempty,datetime=15:04"`
}

func (h *handler) toInput(r addReq) (reminder.AddInput, error) {
	input := reminder.AddInput{
		Text:  r.Text,
		Clock: r.Time,
	}
	if r.Date != "" {
		d, err := h.dates.Parse(r.Date, time.Now())
		if err != nil {
			return reminder.AddInput{}, err
		}
		input.Date = d
	}
	return input, nil
}

// --- Response DTOs ---

type reminderResp struct {
	Order     int           `json:"order"`
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Date      response.Date `json:"date"`
	Time      string        `json:"time"`
	CreatedAt time.Time     `json:"created_at"`
}

// newReminderResp renders a reminder at its 1-indexed display
// position.
func newReminderResp(rem model.Reminder, order int) reminderResp {
	return reminderResp{
		Order:     order,
		ID:        rem.ID,
		Text:      rem.Text,
		Date:      response.Date(rem.Date),
		Time:      rem.Clock,
		CreatedAt: rem.CreatedAt,
	}
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
	Total     int            `json:"total"`
}

func (h *handler) newListResp(reminders []model.Reminder) listResp {
	out := make([]reminderResp, len(reminders))
	for i, rem := range reminders {
		out[i] = newReminderResp(rem, i+1)
	}
	return listResp{
		Reminders: out,
		Total:     len(out),
	}
}
