package http

import (
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/session"
	"study-assistant/pkg/llmprovider"
)

// --- Request DTOs ---

type updateOptionsReq struct {
	Model       *string  `json:"model"`
	Temperature *float64 `json:"temperature" binding:"omitempty,min=0,max=1"`
	StudyMode   *string  `json:"study_mode"  binding:"omitempty,oneof=Balanced 'Exam prep' 'Deep understanding'"`
}

// apply overlays the non-nil fields onto the current options.
func (r updateOptionsReq) apply(opts model.StudyOptions) model.StudyOptions {
	if r.Model != nil {
		opts.Model = *r.Model
	}
	if r.Temperature != nil {
		opts.Temperature = *r.Temperature
	}
	if r.StudyMode != nil {
		opts.StudyMode = *r.StudyMode
	}
	return opts
}

// --- Response DTOs ---

type optionsResp struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	StudyMode   string  `json:"study_mode"`
}

func newOptionsResp(opts model.StudyOptions) optionsResp {
	return optionsResp{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		StudyMode:   opts.StudyMode,
	}
}

type statsResp struct {
	SessionID     string         `json:"session_id"`
	CreatedAt     time.Time      `json:"created_at"`
	TotalRequests int            `json:"total_requests"`
	ByOperation   map[string]int `json:"by_operation"`
	Options       optionsResp    `json:"options"`
}

func newStatsResp(st session.Stats) statsResp {
	return statsResp{
		SessionID:     st.SessionID,
		CreatedAt:     st.CreatedAt,
		TotalRequests: st.TotalRequests,
		ByOperation:   st.ByOperation,
		Options:       newOptionsResp(st.Options),
	}
}

type modelResp struct {
	Model    string `json:"model"`
	Provider string `json:"provider"`
	Ready    bool   `json:"ready"`
}

type modelsResp struct {
	Models []modelResp `json:"models"`
}

func newModelsResp(statuses []llmprovider.ModelStatus) modelsResp {
	models := make([]modelResp, len(statuses))
	for i, st := range statuses {
		models[i] = modelResp{
			Model:    st.Model,
			Provider: st.Provider,
			Ready:    st.Ready,
		}
	}
	return modelsResp{Models: models}
}
