package study

import "study-assistant/internal/model"

// AnswerInput carries one Q&A request. Subject is optional.
type AnswerInput struct {
	Subject  string
	Question string
	Level    string
	Style    string
	Options  model.StudyOptions
}

// SummarizeInput carries one summarization request over pasted text.
type SummarizeInput struct {
	Text              string
	SummaryLength     string
	HighlightKeyTerms bool
	Options           model.StudyOptions
}

// TopicNotesInput carries one structured-notes request.
type TopicNotesInput struct {
	Topic   string
	Depth   string
	Options model.StudyOptions
}

// QuizInput carries one quiz-generation request.
type QuizInput struct {
	Topic        string
	NumQuestions int
	QuizType     string
	Difficulty   string
	Options      model.StudyOptions
}

// DispatchOutput is the display-ready result of one model dispatch.
type DispatchOutput struct {
	Text         string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
}
