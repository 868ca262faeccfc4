package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (со списком нарушений)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrCourtUnavailable возвращается, когда корт на обслуживании
	ErrCourtUnavailable = errors.New("create_reservation: court is under maintenance")

	// ErrCapacityExceeded возвращается, когда игроков больше вместимости корта
	ErrCapacityExceeded = errors.New("create_reservation: players exceed court capacity")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrSlotConflict возвращается, когда окно пересекается с активным бронированием
	ErrSlotConflict = errors.New("create_reservation: court is already reserved for the specified time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
