package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	"study-assistant/pkg/response"
)

// Answer godoc
// @Summary     Answer a study question
// @Description Answers a free-form question with an encouraging tutor persona, adapted to level and explanation style.
// @Tags        Study
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Param       body body answerReq true "Question data"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Bad Request - empty question"
// @Failure     502 {object} response.Resp "Bad Gateway - model provider fault"
// @Failure     503 {object} response.Resp "Service Unavailable - credential not configured"
// @Router      /api/v1/study/answer [POST]
func (h *handler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAnswerReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.recordRequest(c, "answer")
	response.OK(c, h.newDispatchResp(output))
}

// Summarize godoc
// @Summary     Summarize study material
// @Description Condenses pasted text into study notes at the chosen length tier.
// @Tags        Study
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Param       body body summarizeReq true "Text to summarize"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Bad Request - empty text"
// @Failure     502 {object} response.Resp "Bad Gateway - model provider fault"
// @Failure     503 {object} response.Resp "Service Unavailable - credential not configured"
// @Router      /api/v1/study/summary [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summarize(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.recordRequest(c, "summary")
	response.OK(c, h.newDispatchResp(output))
}

// TopicNotes godoc
// @Summary     Generate topic notes
// @Description Produces structured study notes (headings, bullets, definitions, examples) on a topic.
// @Tags        Study
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Param       body body topicNotesReq true "Topic data"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Bad Request - empty topic"
// @Failure     502 {object} response.Resp "Bad Gateway - model provider fault"
// @Failure     503 {object} response.Resp "Service Unavailable - credential not configured"
// @Router      /api/v1/study/notes [POST]
func (h *handler) TopicNotes(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processTopicNotesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.TopicNotes(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.TopicNotes: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.recordRequest(c, "notes")
	response.OK(c, h.newDispatchResp(output))
}

// Quiz godoc
// @Summary     Generate a quiz
// @Description Generates a numbered quiz with a separated answer key on a topic.
// @Tags        Study
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Param       body body quizReq true "Quiz parameters"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Bad Request - empty topic"
// @Failure     502 {object} response.Resp "Bad Gateway - model provider fault"
// @Failure     503 {object} response.Resp "Service Unavailable - credential not configured"
// @Router      /api/v1/study/quiz [POST]
func (h *handler) Quiz(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processQuizReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Quiz(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Quiz: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.recordRequest(c, "quiz")
	response.OK(c, h.newDispatchResp(output))
}

// recordRequest bumps the session's usage counters after a successful
// dispatch.
func (h *handler) recordRequest(c *gin.Context, operation string) {
	if s, ok := middleware.GetSession(c); ok {
		s.RecordRequest(operation)
	}
}
