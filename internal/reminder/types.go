package reminder

import "time"

// AddInput carries one new reminder. Clock is the "15:04" display
// time the reminder targets.
type AddInput struct {
	Text  string
	Date  time.Time
	Clock string
}
