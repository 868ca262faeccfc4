package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	getAvailability "github.com/m04kA/court-reservation-service/internal/usecase/get_availability"
)

const (
	msgInvalidCourtID  = "некорректный ID корта"
	msgMissingDate     = "дата обязательна"
	msgInvalidDuration = "некорректная длительность"
	msgInvalidParams   = "некорректные параметры запроса"
	msgCourtNotFound   = "корт не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/available/{courtId}
// Query params: date (required, YYYY-MM-DD), duration (опционально, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		h.logger.Warn("GET /reservations/available/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /reservations/available/{id} - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(courtID, date, r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /reservations/available/{id} - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /reservations/available/{id} - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondValidationError(w, msgInvalidParams, err)

		case errors.Is(err, getAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /reservations/available/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("GET /reservations/available/{id} - Failed to get free slots: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /reservations/available/{id} - Free slots retrieved: court_id=%d, date=%s, free=%d",
		courtID, date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
