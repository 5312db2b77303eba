package http

import (
	"errors"

	"study-assistant/internal/study"
	pkgErrors "study-assistant/pkg/errors"
	"study-assistant/pkg/llmprovider"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Every dispatch fault must come out as a readable message
// with a sensible status; nothing propagates raw.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, study.ErrEmptyQuestion),
		errors.Is(err, study.ErrEmptyText),
		errors.Is(err, study.ErrEmptyTopic),
		errors.Is(err, study.ErrEmptyQuizTopic):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, llmprovider.ErrUnknownModel):
		return pkgErrors.NewHTTPError(400, "unknown model identifier")
	case errors.Is(err, llmprovider.ErrMissingCredential):
		return pkgErrors.NewHTTPError(503, "model credential not configured - set the provider API key and restart")
	default:
		var pe *llmprovider.ProviderError
		if errors.As(err, &pe) {
			return pkgErrors.NewHTTPError(502, "model provider error: "+pe.Err.Error())
		}
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
