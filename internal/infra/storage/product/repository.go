package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/court-reservation-service/internal/domain"
	"github.com/m04kA/court-reservation-service/pkg/dbmetrics"
	"github.com/m04kA/court-reservation-service/pkg/psqlbuilder"
)

// Repository репозиторий инвентаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инвентаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs возвращает товары по списку ID. Отсутствующие ID просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	products := make(map[int64]*domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	list, err := r.list(ctx, squirrel.Eq{"id": ids}, "GetByIDs")
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		products[p.ID] = p
	}
	return products, nil
}

// List возвращает каталог инвентаря
func (r *Repository) List(ctx context.Context, availableOnly bool) ([]*domain.Product, error) {
	var where squirrel.Sqlizer
	if availableOnly {
		where = squirrel.And{squirrel.Eq{"available": true}, squirrel.Gt{"stock": 0}}
	}
	return r.list(ctx, where, "List")
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer, op string) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "price", "stock", "available").
		From("products").
		OrderBy("name ASC", "id ASC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Available); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return products, nil
}

// Reserve списывает quantity единиц со склада.
// Условие stock >= quantity проверяется в самом UPDATE, поэтому склад не уходит в минус.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Reserve(ctx context.Context, id int64, quantity int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("stock", squirrel.Expr("stock - ?", quantity)).
		Where(squirrel.Eq{"id": id, "available": true}).
		Where(squirrel.GtOrEq{"stock": quantity}).
		Suffix("RETURNING stock").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	var stock int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInsufficientStock
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Reserve - execute update: %w", ErrExecQuery, err)
	}

	return stock, nil
}

// Release возвращает quantity единиц на склад (отмена бронирования)
func (r *Repository) Release(ctx context.Context, id int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("stock", squirrel.Expr("stock + ?", quantity)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute update: %w", ErrExecQuery, err)
	}
	return nil
}
