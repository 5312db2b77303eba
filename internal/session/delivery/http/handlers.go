package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	pkgErrors "study-assistant/pkg/errors"
	"study-assistant/pkg/response"
)

// GetOptions godoc
// @Summary     Get session study options
// @Description Returns the caller's current model, temperature and study mode.
// @Tags        Session
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Success     200 {object} optionsResp
// @Router      /api/v1/session/options [GET]
func (h *handler) GetOptions(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		response.InternalError(c, nil)
		return
	}
	response.OK(c, newOptionsResp(s.Options()))
}

// UpdateOptions godoc
// @Summary     Update session study options
// @Description Partially updates the caller's study options. Unknown model identifiers are rejected.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Param       body body updateOptionsReq true "Fields to update"
// @Success     200 {object} optionsResp
// @Failure     400 {object} response.Resp "Bad Request - unknown model or invalid value"
// @Router      /api/v1/session/options [PUT]
func (h *handler) UpdateOptions(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := middleware.GetSession(c)
	if !ok {
		response.InternalError(c, nil)
		return
	}

	var req updateOptionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.Model != nil {
		if _, known := h.knownModel(*req.Model); !known {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown model identifier"), nil)
			return
		}
	}

	opts := req.apply(s.Options())
	s.SetOptions(opts)
	h.l.Infof(ctx, "session.UpdateOptions: session=%s model=%s mode=%s", s.ID, opts.Model, opts.StudyMode)

	response.OK(c, newOptionsResp(opts))
}

// Stats godoc
// @Summary     Get session usage stats
// @Description Returns request counters for the caller's session.
// @Tags        Session
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Success     200 {object} statsResp
// @Router      /api/v1/session/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		response.InternalError(c, nil)
		return
	}
	response.OK(c, newStatsResp(s.Stats()))
}

// Models godoc
// @Summary     List selectable models
// @Description Returns every configured model with its provider and readiness. A model is not ready when its credential is absent.
// @Tags        Session
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, newModelsResp(h.catalog.Models()))
}

// knownModel reports whether the registry carries the model, ready or
// not. Selecting a not-ready model is allowed; dispatch will surface
// the credential error.
func (h *handler) knownModel(name string) (string, bool) {
	for _, st := range h.catalog.Models() {
		if st.Model == name {
			return st.Provider, true
		}
	}
	return "", false
}
