package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/court-reservation-service/pkg/validation"
)

// Виды ошибок в теле ответа
const (
	KindInvalidArgument  = "invalid_argument"
	KindNotFound         = "not_found"
	KindCapacityExceeded = "capacity_exceeded"
	KindConflict         = "conflict"
	KindForbidden        = "forbidden"
	KindInvalidState     = "invalid_state"
	KindUnauthorized     = "unauthorized"
	KindInternal         = "internal"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	maxBodyBytes     = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error      string                 `json:"error"`
	Message    string                 `json:"message"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError отправляет ошибку, вид ошибки определяется по статусу
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondErrorKind(w, status, kindByStatus(status), message)
}

// RespondErrorKind отправляет ошибку с явно заданным видом
func RespondErrorKind(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

// RespondValidationError отправляет 400 со списком нарушений из err
func RespondValidationError(w http.ResponseWriter, message string, err error) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:      KindInvalidArgument,
		Message:    message,
		Violations: validation.Violations(err),
	})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409, окно или ресурс заняты
func RespondConflict(w http.ResponseWriter, message string) {
	RespondErrorKind(w, http.StatusConflict, KindConflict, message)
}

// RespondInvalidState 409, операция недопустима в текущем статусе
func RespondInvalidState(w http.ResponseWriter, message string) {
	RespondErrorKind(w, http.StatusConflict, KindInvalidState, message)
}

// RespondCapacityExceeded 422
func RespondCapacityExceeded(w http.ResponseWriter, message string) {
	RespondErrorKind(w, http.StatusUnprocessableEntity, KindCapacityExceeded, message)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса в v. Неизвестные поля игнорируются.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func kindByStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return KindInvalidArgument
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnprocessableEntity:
		return KindCapacityExceeded
	default:
		return KindInternal
	}
}
