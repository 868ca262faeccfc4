package settle_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settle_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("settle_reservation: reservation not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("settle_reservation: user not found")

	// ErrForbidden возвращается, когда бронирование оплачивает не его владелец
	ErrForbidden = errors.New("settle_reservation: reservation belongs to another user")

	// ErrAlreadyProcessed возвращается, когда бронирование уже не в статусе pending
	ErrAlreadyProcessed = errors.New("settle_reservation: reservation already processed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("settle_reservation: internal error")
)
