package study

import (
	"context"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer answers a study question, optionally scoped to a subject.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (DispatchOutput, error)
	// Summarize condenses pasted study material into notes.
	Summarize(ctx context.Context, sc model.Scope, input SummarizeInput) (DispatchOutput, error)
	// TopicNotes produces structured notes on a topic.
	TopicNotes(ctx context.Context, sc model.Scope, input TopicNotesInput) (DispatchOutput, error)
	// Quiz generates a quiz with an answer key on a topic.
	Quiz(ctx context.Context, sc model.Scope, input QuizInput) (DispatchOutput, error)
}
