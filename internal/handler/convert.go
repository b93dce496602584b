package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"blockpress/internal/domain"
	"blockpress/internal/httputil"
	"blockpress/internal/service"
)

// ConvertHandler handles conversion HTTP requests
type ConvertHandler struct {
	service *service.ConvertService
	logger  *slog.Logger
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(svc *service.ConvertService, logger *slog.Logger) *ConvertHandler {
	return &ConvertHandler{
		service: svc,
		logger:  logger,
	}
}

// Convert runs one conversion job
// POST /api/convert
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req service.ConvertRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Convert(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// respondError maps domain errors to HTTP status codes
func (h *ConvertHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrTooLarge):
		httputil.RespondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.logger.Error("conversion failed",
			"request_id", httputil.GetRequestID(r),
			"error", err,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Health reports service liveness
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
