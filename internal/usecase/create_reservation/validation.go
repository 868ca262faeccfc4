package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/court-reservation-service/internal/domain"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

// validateRequest проверяет структуру запроса и возвращает игроков с нормализованным RUT.
// Все нарушения собираются в один список.
func validateRequest(req *Request) ([]domain.Player, error) {
	v := &validation.Collector{}

	v.Check(req.UserID > 0, "userId", "must be positive")
	v.Check(req.CourtID > 0, "courtId", "must be positive")
	v.Check(strings.TrimSpace(req.StartTime) != "", "startTime", "is required")
	v.Check(strings.TrimSpace(req.EndTime) != "", "endTime", "is required")
	v.Check(len(req.Players) > 0, "players", "at least one player is required")

	players := make([]domain.Player, 0, len(req.Players))
	for i, p := range req.Players {
		field := fmt.Sprintf("players[%d]", i)

		firstName := strings.TrimSpace(p.FirstName)
		lastName := strings.TrimSpace(p.LastName)
		checkName(v, field+".firstName", firstName)
		checkName(v, field+".lastName", lastName)

		rut, ok := domain.NormalizeRut(p.Rut)
		v.Check(ok, field+".rut", "invalid RUT %q", p.Rut)

		v.Check(p.Age >= domain.MinPlayerAge && p.Age <= domain.MaxPlayerAge,
			field+".age", "must be between %d and %d", domain.MinPlayerAge, domain.MaxPlayerAge)

		players = append(players, domain.Player{
			FirstName: firstName,
			LastName:  lastName,
			Rut:       rut,
			Age:       p.Age,
		})
	}

	v.Check(len(req.Equipment) <= domain.MaxEquipmentItems, "equipment", "at most %d items allowed", domain.MaxEquipmentItems)
	seen := make(map[int64]struct{}, len(req.Equipment))
	for i, e := range req.Equipment {
		field := fmt.Sprintf("equipment[%d]", i)
		v.Check(e.ProductID > 0, field+".id", "must be positive")
		v.Check(e.Quantity >= 1, field+".quantity", "must be at least 1")
		if _, dup := seen[e.ProductID]; dup && e.ProductID > 0 {
			v.Add(field+".id", "product %d is listed twice", e.ProductID)
		}
		seen[e.ProductID] = struct{}{}
	}

	if err := v.Err(ErrInvalidInput); err != nil {
		return nil, err
	}
	return players, nil
}

func checkName(v *validation.Collector, field, value string) {
	if value == "" {
		v.Add(field, "is required")
		return
	}
	v.Check(utf8.RuneCountInString(value) <= domain.MaxNameLength, field, "must be at most %d characters", domain.MaxNameLength)
}

// parseInterval разбирает время начала и окончания (RFC3339) и проверяет, что окно
// лежит в будущем внутри рабочих часов одного дня
func parseInterval(startRaw, endRaw string, now time.Time) (time.Time, time.Time, error) {
	v := &validation.Collector{}

	start, err := time.Parse(time.RFC3339, startRaw)
	v.Check(err == nil, "startTime", "must be an ISO-8601 timestamp")
	end, errEnd := time.Parse(time.RFC3339, endRaw)
	v.Check(errEnd == nil, "endTime", "must be an ISO-8601 timestamp")
	if v.HasViolations() {
		return time.Time{}, time.Time{}, v.Err(ErrInvalidInput)
	}

	start, end = start.UTC(), end.UTC()
	if !start.Before(end) {
		return time.Time{}, time.Time{}, validation.NewError(ErrInvalidInput, "endTime", "must be after startTime")
	}

	v.Check(start.After(now), "startTime", "must be in the future")

	open, closing := domain.BusinessHours(start)
	v.Check(!start.Before(open) && !end.After(closing), "startTime",
		"reservation must fit within business hours %02d:00-%02d:00 UTC", domain.OpeningHour, domain.ClosingHour)

	if err := v.Err(ErrInvalidInput); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// priceEquipment проверяет наличие инвентаря и фиксирует цену из каталога
func priceEquipment(items []EquipmentInput, products map[int64]*domain.Product) ([]domain.EquipmentItem, error) {
	v := &validation.Collector{}
	out := make([]domain.EquipmentItem, 0, len(items))

	for i, item := range items {
		field := fmt.Sprintf("equipment[%d]", i)

		product, ok := products[item.ProductID]
		if !ok {
			v.Add(field+".id", "product %d not found", item.ProductID)
			continue
		}
		if !product.CanSupply(item.Quantity) {
			v.Add(field+".quantity", "product %q is not available in quantity %d", product.Name, item.Quantity)
			continue
		}

		out = append(out, domain.EquipmentItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	if err := v.Err(ErrInvalidInput); err != nil {
		return nil, err
	}
	return out, nil
}

// findOverlapping возвращает первое активное бронирование, пересекающее [start, end)
func findOverlapping(start, end time.Time, reservations []*domain.Reservation) *domain.Reservation {
	for _, r := range reservations {
		// Пропускаем неактивные бронирования
		if !r.IsBlocking() {
			continue
		}
		// Строгие неравенства, граничные случаи не считаются
		if r.Overlaps(start, end) {
			return r
		}
	}
	return nil
}
