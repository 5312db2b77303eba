package http

import (
	"study-assistant/internal/study"
)

// --- Request DTOs ---

type answerReq struct {
	Subject  string `json:"subject"  binding:"max=500"`
	Question string `json:"question" binding:"required"`
	Level    string `json:"level"    binding:"omitempty,oneof=School Undergraduate Graduate General"`
	Style    string `json:"style"    binding:"omitempty,oneof=Simple Detailed Step-by-step"`
}

func (r answerReq) toInput() study.AnswerInput {
	return study.AnswerInput{
		Subject:  r.Subject,
		Question: r.Question,
		Level:    r.Level,
		Style:    r.Style,
	}
}

type summarizeReq struct {
	Text              string `json:"text"                binding:"required"`
	SummaryLength     string `json:"summary_length"      binding:"omitempty,oneof='Very short (bullet points)' Short Medium Detailed"`
	HighlightKeyTerms *bool  `json:"highlight_key_terms"`
}

func (r summarizeReq) toInput() study.SummarizeInput {
	highlight := true
	if r.HighlightKeyTerms != nil {
		highlight = *r.HighlightKeyTerms
	}
	return study.SummarizeInput{
		Text:              r.Text,
		SummaryLength:     r.SummaryLength,
		HighlightKeyTerms: highlight,
	}
}

type topicNotesReq struct {
	Topic string `json:"topic" binding:"required"`
	Depth string `json:"depth" binding:"omitempty,oneof=Overview Standard In-depth"`
}

func (r topicNotesReq) toInput() study.TopicNotesInput {
	return study.TopicNotesInput{
		Topic: r.Topic,
		Depth: r.Depth,
	}
}

type quizReq struct {
	Topic        string `json:"topic"         binding:"required"`
	NumQuestions int    `json:"num_questions" binding:"omitempty,min=3,max=20"`
	QuizType     string `json:"quiz_type"     binding:"omitempty,oneof='Multiple choice' 'Short answer' Mixed"`
	Difficulty   string `json:"difficulty"    binding:"omitempty,oneof=Easy Medium Hard Mixed"`
}

func (r quizReq) toInput() study.QuizInput {
	return study.QuizInput{
		Topic:        r.Topic,
		NumQuestions: r.NumQuestions,
		QuizType:     r.QuizType,
		Difficulty:   r.Difficulty,
	}
}

// --- Response DTOs ---

type dispatchResp struct {
	Text         string `json:"text"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
}

func (h *handler) newDispatchResp(out study.DispatchOutput) dispatchResp {
	return dispatchResp{
		Text:         out.Text,
		Provider:     out.Provider,
		Model:        out.Model,
		InputTokens:  out.InputTokens,
		OutputTokens: out.OutputTokens,
	}
}
