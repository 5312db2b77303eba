package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	"study-assistant/internal/study"
)

// Study options ride in from the caller's session; they only change
// through the session endpoints, never per dispatch.

func (h *handler) processAnswerReq(c *gin.Context) (study.AnswerInput, error) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return study.AnswerInput{}, err
	}
	input := req.toInput()
	if s, ok := middleware.GetSession(c); ok {
		input.Options = s.Options()
	}
	return input, nil
}

func (h *handler) processSummarizeReq(c *gin.Context) (study.SummarizeInput, error) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return study.SummarizeInput{}, err
	}
	input := req.toInput()
	if s, ok := middleware.GetSession(c); ok {
		input.Options = s.Options()
	}
	return input, nil
}

func (h *handler) processTopicNotesReq(c *gin.Context) (study.TopicNotesInput, error) {
	var req topicNotesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return study.TopicNotesInput{}, err
	}
	input := req.toInput()
	if s, ok := middleware.GetSession(c); ok {
		input.Options = s.Options()
	}
	return input, nil
}

func (h *handler) processQuizReq(c *gin.Context) (study.QuizInput, error) {
	var req quizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return study.QuizInput{}, err
	}
	input := req.toInput()
	if s, ok := middleware.GetSession(c); ok {
		input.Options = s.Options()
	}
	return input, nil
}
