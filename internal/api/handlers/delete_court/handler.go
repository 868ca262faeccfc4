package delete_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	"github.com/m04kA/court-reservation-service/internal/service/courts"
)

const (
	msgInvalidCourtID      = "некорректный ID корта"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgCourtNotFound       = "корт не найден"
	msgForbidden           = "доступ запрещен"
	msgActiveReservations  = "у корта есть действующие бронирования"
	msgReservationsHistory = "на корт ссылаются прошлые бронирования, переведите его в статус maintenance"
)

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

// Handle DELETE /api/v1/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /courts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), courtID, userID); err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("DELETE /courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("DELETE /courts/{id} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrHasActiveReservations):
			h.logger.Warn("DELETE /courts/{id} - Court has active reservations: court_id=%d", courtID)
			handlers.RespondConflict(w, msgActiveReservations)

		case errors.Is(err, courts.ErrHasReservationHistory):
			h.logger.Warn("DELETE /courts/{id} - Court has reservation history: court_id=%d", courtID)
			handlers.RespondConflict(w, msgReservationsHistory)

		default:
			h.logger.Error("DELETE /courts/{id} - Failed to delete court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id} - Court deleted successfully: court_id=%d", courtID)
	w.WriteHeader(http.StatusNoContent)
}
