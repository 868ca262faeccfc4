package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/court-reservation-service/internal/domain"
	"github.com/m04kA/court-reservation-service/pkg/dbmetrics"
	"github.com/m04kA/court-reservation-service/pkg/psqlbuilder"
)

const (
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

var reservationColumns = []string{
	"id",
	"user_id",
	"court_id",
	"start_time",
	"end_time",
	"amount",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований, игроков и инвентаря бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование вместе с игроками и инвентарем.
// Вызывать внутри транзакции: строки игроков ссылаются на сгенерированный id бронирования,
// и при ошибке на любом шаге не должно остаться частично записанных данных.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("user_id", "court_id", "start_time", "end_time", "amount", "status").
		Values(res.UserID, res.CourtID, res.StartTime.UTC(), res.EndTime.UTC(), res.Amount, res.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, classify(err, "Create - insert reservation")
	}
	res.CreatedAt = createdAt.Time.UTC()
	res.UpdatedAt = updatedAt.Time.UTC()

	if err := r.insertPlayers(ctx, executor, res); err != nil {
		return nil, err
	}
	if err := r.insertEquipment(ctx, executor, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) insertPlayers(ctx context.Context, executor DBExecutor, res *domain.Reservation) error {
	if len(res.Players) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("players").
		Columns("reservation_id", "position", "first_name", "last_name", "rut", "age").
		Suffix("RETURNING id")
	for i, p := range res.Players {
		builder = builder.Values(res.ID, i, p.FirstName, p.LastName, p.Rut, p.Age)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertPlayers - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return classify(err, "insertPlayers - insert")
	}
	defer rows.Close()

	// RETURNING сохраняет порядок VALUES
	i := 0
	for rows.Next() {
		if i >= len(res.Players) {
			break
		}
		if err := rows.Scan(&res.Players[i].ID); err != nil {
			return fmt.Errorf("%w: insertPlayers - scan id: %w", ErrScanRow, err)
		}
		res.Players[i].ReservationID = res.ID
		i++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: insertPlayers - rows error: %w", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) insertEquipment(ctx context.Context, executor DBExecutor, res *domain.Reservation) error {
	if len(res.Equipment) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("reservation_equipment").
		Columns("reservation_id", "product_id", "quantity", "unit_price")
	for _, e := range res.Equipment {
		builder = builder.Values(res.ID, e.ProductID, e.Quantity, e.UnitPrice)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertEquipment - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return classify(err, "insertEquipment - insert")
	}
	return nil
}

// GetByID получает бронирование по ID вместе с игроками и инвентарем.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	list := []*domain.Reservation{res}
	if err := r.loadDetails(ctx, executor, list); err != nil {
		return nil, err
	}

	return res, nil
}

// List получает бронирования по фильтру, упорядоченные по времени начала.
// Если заданы корт и период и вызов идет внутри транзакции - строки блокируются (FOR UPDATE),
// чтобы конкурентное бронирование того же окна ждало коммита.
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).From("reservations")

	if filter.CourtID != nil {
		builder = builder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	// Пересечение с [From, To): end > From AND start < To
	if filter.From != nil {
		builder = builder.Where(squirrel.Gt{"end_time": filter.From.UTC()})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_time": filter.To.UTC()})
	}

	if filter.UserID != nil && filter.CourtID == nil {
		builder = builder.OrderBy("start_time DESC")
	} else {
		builder = builder.OrderBy("start_time ASC", "id ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.CourtID != nil && filter.From != nil && filter.To != nil {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "List - execute query")
	}
	defer rows.Close()

	list := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		list = append(list, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	if err := r.loadDetails(ctx, executor, list); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(err, "UpdateStatus - execute update")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CountActiveByCourt считает pending/confirmed бронирования корта, которые заканчиваются после after
func (r *Repository) CountActiveByCourt(ctx context.Context, courtID int64, after time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"status": statusStrings(domain.BlockingStatuses)}).
		Where(squirrel.Gt{"end_time": after.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByCourt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByCourt - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// loadDetails подгружает игроков и инвентарь для списка бронирований двумя запросами
func (r *Repository) loadDetails(ctx context.Context, executor DBExecutor, list []*domain.Reservation) error {
	if len(list) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Reservation, len(list))
	ids := make([]int64, 0, len(list))
	for _, res := range list {
		byID[res.ID] = res
		ids = append(ids, res.ID)
		res.Players = make([]domain.Player, 0)
		res.Equipment = make([]domain.EquipmentItem, 0)
	}

	if err := r.loadPlayers(ctx, executor, ids, byID); err != nil {
		return err
	}
	return r.loadEquipment(ctx, executor, ids, byID)
}

func (r *Repository) loadPlayers(ctx context.Context, executor DBExecutor, ids []int64, byID map[int64]*domain.Reservation) error {
	query, args, err := psqlbuilder.Select("id", "reservation_id", "first_name", "last_name", "rut", "age").
		From("players").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("reservation_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadPlayers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return classify(err, "loadPlayers - execute query")
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.FirstName, &p.LastName, &p.Rut, &p.Age); err != nil {
			return fmt.Errorf("%w: loadPlayers - scan row: %w", ErrScanRow, err)
		}
		if res, ok := byID[p.ReservationID]; ok {
			res.Players = append(res.Players, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadPlayers - rows error: %w", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadEquipment(ctx context.Context, executor DBExecutor, ids []int64, byID map[int64]*domain.Reservation) error {
	query, args, err := psqlbuilder.Select("reservation_id", "product_id", "quantity", "unit_price").
		From("reservation_equipment").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("reservation_id ASC", "product_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return classify(err, "loadEquipment - execute query")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reservationID int64
			item          domain.EquipmentItem
		)
		if err := rows.Scan(&reservationID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("%w: loadEquipment - scan row: %w", ErrScanRow, err)
		}
		if res, ok := byID[reservationID]; ok {
			res.Equipment = append(res.Equipment, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadEquipment - rows error: %w", ErrScanRow, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		status               string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.CourtID,
		&res.StartTime,
		&res.EndTime,
		&res.Amount,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Status = domain.ReservationStatus(status)
	res.StartTime = res.StartTime.UTC()
	res.EndTime = res.EndTime.UTC()
	res.CreatedAt = createdAt.Time.UTC()
	res.UpdatedAt = updatedAt.Time.UTC()
	return &res, nil
}

// classify переводит ошибки PostgreSQL в ошибки репозитория.
// Исходная ошибка остается в цепочке, чтобы менеджер транзакций мог распознать сериализационный конфликт.
func classify(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgExclusionViolation:
			return fmt.Errorf("%w: %s: %w", ErrSlotConflict, op, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s: %w", ErrForeignKey, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
