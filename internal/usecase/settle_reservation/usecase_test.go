package settle_reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/domain"
	reservationRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/pkg/logger"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	updates      int
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.updates++
	r.Status = status
	return nil
}

type fakeUserRepo struct {
	users    map[int64]*domain.User
	debits   int
	debitErr error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Debit(_ context.Context, id int64, amount float64) (float64, error) {
	if f.debitErr != nil {
		return 0, f.debitErr
	}
	u := f.users[id]
	if u.Balance < amount {
		return 0, userRepo.ErrInsufficientBalance
	}
	f.debits++
	u.Balance -= amount
	return u.Balance, nil
}

type fakeNotifier struct {
	confirmed []int64
	err       error
}

func (f *fakeNotifier) ReservationConfirmed(_ context.Context, r *domain.Reservation) error {
	f.confirmed = append(f.confirmed, r.ID)
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	results []string
}

func (f *fakeMetrics) IncSettlement(result string) {
	f.results = append(f.results, result)
}

type testDeps struct {
	reservations *fakeReservationRepo
	users        *fakeUserRepo
	notifier     *fakeNotifier
	metrics      *fakeMetrics
	uc           *UseCase
}

func newTestDeps(status domain.ReservationStatus, balance float64) *testDeps {
	d := &testDeps{
		reservations: &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
			1: {ID: 1, UserID: 7, CourtID: 3, Amount: 15000, Status: status},
		}},
		users: &fakeUserRepo{users: map[int64]*domain.User{
			7: {ID: 7, Balance: balance},
			8: {ID: 8, Balance: 100000},
		}},
		notifier: &fakeNotifier{},
		metrics:  &fakeMetrics{},
	}
	d.uc = NewUseCase(d.reservations, d.users, d.notifier, fakeTxManager{}, d.metrics, logger.Nop())
	return d
}

func TestExecute_ConfirmsAndDebits(t *testing.T) {
	d := newTestDeps(domain.StatusPending, 20000)

	resp, err := d.uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 7})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 5000.0, resp.Balance)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.Shortfall)
	assert.Equal(t, domain.StatusConfirmed, d.reservations.reservations[1].Status)
	assert.Equal(t, []int64{1}, d.notifier.confirmed)
	assert.Equal(t, []string{ResultConfirmed}, d.metrics.results)

	// Повторная оплата
	_, err = d.uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 7})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Equal(t, 1, d.users.debits)
	assert.Equal(t, 5000.0, d.users.users[7].Balance)
}

func TestExecute_InsufficientBalanceIsIdempotent(t *testing.T) {
	d := newTestDeps(domain.StatusPending, 10000)

	for i := 0; i < 2; i++ {
		resp, err := d.uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 7})
		require.NoError(t, err)

		assert.False(t, resp.Success)
		assert.Equal(t, "insufficient balance", resp.Message)
		require.NotNil(t, resp.Shortfall)
		assert.Equal(t, 5000.0, *resp.Shortfall)
		assert.Equal(t, 10000.0, resp.Balance)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
	}

	assert.Equal(t, domain.StatusPending, d.reservations.reservations[1].Status)
	assert.Equal(t, 0, d.users.debits)
	assert.Equal(t, 0, d.reservations.updates)
	assert.Empty(t, d.notifier.confirmed)
	assert.Equal(t, []string{ResultInsufficientBalance, ResultInsufficientBalance}, d.metrics.results)
}

func TestExecute_DebitRaceReportsInsufficient(t *testing.T) {
	d := newTestDeps(domain.StatusPending, 20000)
	d.users.debitErr = userRepo.ErrInsufficientBalance

	resp, err := d.uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 7})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, d.reservations.updates)
}

func TestExecute_NotifierFailureIsSwallowed(t *testing.T) {
	d := newTestDeps(domain.StatusPending, 15000)
	d.notifier.err = errors.New("broker unavailable")

	resp, err := d.uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 7})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0.0, resp.Balance)
	assert.Equal(t, domain.StatusConfirmed, d.reservations.reservations[1].Status)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		req     *Request
		wantErr error
	}{
		{name: "invalid ids", status: domain.StatusPending, req: &Request{ReservationID: 0, UserID: 7}, wantErr: ErrInvalidInput},
		{name: "not found", status: domain.StatusPending, req: &Request{ReservationID: 99, UserID: 7}, wantErr: ErrReservationNotFound},
		{name: "other user", status: domain.StatusPending, req: &Request{ReservationID: 1, UserID: 8}, wantErr: ErrForbidden},
		{name: "completed", status: domain.StatusCompleted, req: &Request{ReservationID: 1, UserID: 7}, wantErr: ErrAlreadyProcessed},
		{name: "cancelled", status: domain.StatusCancelled, req: &Request{ReservationID: 1, UserID: 7}, wantErr: ErrAlreadyProcessed},
		{name: "confirmed", status: domain.StatusConfirmed, req: &Request{ReservationID: 1, UserID: 7}, wantErr: ErrAlreadyProcessed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(tt.status, 100000)

			_, err := d.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, d.users.debits)
			assert.Empty(t, d.notifier.confirmed)
		})
	}
}

func TestExecute_UserMissing(t *testing.T) {
	d := newTestDeps(domain.StatusPending, 20000)
	delete(d.users.users, 7)

	_, err := d.uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 7})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
