package get_court_utilization

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	getCourtUtilization "github.com/m04kA/court-reservation-service/internal/usecase/get_court_utilization"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidDays    = "некорректный период"
	msgCourtNotFound  = "корт не найден"
)

type Handler struct {
	useCase GetCourtUtilizationUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtUtilizationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/utilization
// Query params: days (опционально, по умолчанию 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/utilization - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	req := &getCourtUtilization.Request{CourtID: courtID}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /courts/{id}/utilization - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCourtUtilization.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/utilization - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidDays, err)

		case errors.Is(err, getCourtUtilization.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/utilization - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("GET /courts/{id}/utilization - Failed to build report: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/utilization - Report built: court_id=%d, days=%d, utilization=%.2f",
		courtID, result.Days, result.UtilizationPercent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
