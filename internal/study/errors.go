package study

import "errors"

var (
	ErrEmptyQuestion  = errors.New("question must not be empty")
	ErrEmptyText      = errors.New("text to summarize must not be empty")
	ErrEmptyTopic     = errors.New("topic must not be empty")
	ErrEmptyQuizTopic = errors.New("quiz topic must not be empty")
	ErrInvalidOptions = errors.New("invalid study options")
)
