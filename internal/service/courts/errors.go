package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("courts: court not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("courts: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("courts: invalid input data")

	// ErrHasActiveReservations возвращается при удалении корта с действующими бронированиями
	ErrHasActiveReservations = errors.New("courts: court has active reservations")

	// ErrHasReservationHistory возвращается, когда на корт ссылаются завершённые или отменённые бронирования
	ErrHasReservationHistory = errors.New("courts: court is referenced by reservation history")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts: internal error")
)
