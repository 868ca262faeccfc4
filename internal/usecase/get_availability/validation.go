package get_availability

import (
	"strings"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

// validateRequest проверяет запрос и возвращает дату и длительность окна
func validateRequest(req *Request) (time.Time, int, error) {
	v := &validation.Collector{}

	v.Check(req.CourtID > 0, "courtId", "must be positive")

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	v.Check(err == nil, "date", "must be a calendar date in format YYYY-MM-DD")

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}
	v.Check(domain.IsValidSlotDuration(duration), "duration",
		"must be a multiple of %d between %d and %d minutes",
		domain.SlotDurationGranularity, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)

	if err := v.Err(ErrInvalidInput); err != nil {
		return time.Time{}, 0, err
	}
	return date, duration, nil
}
