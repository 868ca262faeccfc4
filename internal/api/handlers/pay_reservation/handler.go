package pay_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	settleReservation "github.com/m04kA/court-reservation-service/internal/usecase/settle_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "оплатить бронирование может только его владелец"
	msgNotFound             = "бронирование не найдено"
	msgUserNotFound         = "пользователь не найден"
	msgAlreadyProcessed     = "бронирование уже обработано"
)

type Handler struct {
	useCase SettleReservationUseCase
	logger  Logger
}

func NewHandler(useCase SettleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/pay
// Нехватка средств возвращается с 200 и success=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/pay - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/pay - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PayReservationRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /reservations/{id}/pay - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	// Платить от имени другого пользователя нельзя
	if req.UserID != nil && *req.UserID != userID {
		h.logger.Warn("POST /reservations/{id}/pay - User mismatch: header=%d, body=%d", userID, *req.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &settleReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, settleReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/pay - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, settleReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/pay - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, settleReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations/{id}/pay - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, settleReservation.ErrForbidden):
			h.logger.Warn("POST /reservations/{id}/pay - Forbidden: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settleReservation.ErrAlreadyProcessed):
			h.logger.Warn("POST /reservations/{id}/pay - Already processed: reservation_id=%d", reservationID)
			handlers.RespondInvalidState(w, msgAlreadyProcessed)

		default:
			h.logger.Error("POST /reservations/{id}/pay - Failed to settle reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/pay - Settlement finished: reservation_id=%d, success=%t",
		reservationID, result.Success)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
