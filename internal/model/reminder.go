package model

import "time"

// Reminder is a session-scoped study reminder. Reminders live only in
// memory and vanish when their session is evicted.
type Reminder struct {
	ID        string
	Text      string
	Date      time.Time
	Clock     string // "15:04" display time
	CreatedAt time.Time
}
