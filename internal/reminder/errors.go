package reminder

import "errors"

var (
	ErrEmptyText = errors.New("reminder text must not be empty")
)
