package list_courts

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	"github.com/m04kA/court-reservation-service/internal/service/courts"
)

const msgInvalidStatus = "некорректный статус корта"

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		if errors.Is(err, courts.ErrInvalidInput) {
			h.logger.Warn("GET /courts - Invalid status: %v", err)
			handlers.RespondValidationError(w, msgInvalidStatus, err)
			return
		}
		h.logger.Error("GET /courts - Failed to list courts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Courts retrieved successfully: count=%d", len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
