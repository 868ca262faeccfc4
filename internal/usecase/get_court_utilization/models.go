package get_court_utilization

import "time"

// Request модель запроса отчета о загрузке корта
type Request struct {
	CourtID int64
	Days    int // 0 - период по умолчанию
}

// Response отчет о загрузке корта за последние Days дней, включая сегодняшний
type Response struct {
	CourtID            int64
	CourtName          string
	From               time.Time
	To                 time.Time
	Days               int
	TotalReservations  int
	ByStatus           map[string]int
	Revenue            float64
	BookedMinutes      int
	AvailableMinutes   int
	UtilizationPercent float64
}
