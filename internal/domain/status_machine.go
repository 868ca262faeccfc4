package domain

// allowedTransitions таблица допустимых переходов статусов бронирования.
// Из completed и cancelled переходов нет.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition проверяет допустимость перехода current -> next
func CanTransition(current, next ReservationStatus) bool {
	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanTransitionManually проверяет переход, выполняемый через смену статуса вручную.
// В confirmed бронирование попадает только через оплату.
func CanTransitionManually(current, next ReservationStatus) bool {
	return next != StatusConfirmed && CanTransition(current, next)
}

// AllowedTransitions возвращает копию списка допустимых следующих статусов
func AllowedTransitions(current ReservationStatus) []ReservationStatus {
	next := allowedTransitions[current]
	out := make([]ReservationStatus, len(next))
	copy(out, next)
	return out
}
