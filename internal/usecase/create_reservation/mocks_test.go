package create_reservation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

type mockReservationRepo struct{ mock.Mock }

// Create имитирует вставку: проставляет ID бронированию и игрокам
func (m *mockReservationRepo) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, r)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	r.ID = 100
	for i := range r.Players {
		r.Players[i].ID = int64(i + 1)
		r.Players[i].ReservationID = r.ID
	}
	return r, nil
}

func (m *mockReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if list := args.Get(0); list != nil {
		return list.([]*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCourtRepo struct{ mock.Mock }

func (m *mockCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.(map[int64]*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Reserve(ctx context.Context, id int64, quantity int) (int, error) {
	args := m.Called(ctx, id, quantity)
	return args.Int(0), args.Error(1)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	created int
}

func (f *fakeMetrics) IncReservationCreated() {
	f.created++
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}
