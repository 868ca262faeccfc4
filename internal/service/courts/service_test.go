package courts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/domain"
	courtRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/court"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/internal/service/courts/models"
	"github.com/m04kA/court-reservation-service/pkg/logger"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

const (
	adminID = int64(1)
	userID  = int64(2)
	baseURL = "https://cdn.example.com/courts/"
)

var now = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

type mockCourtRepo struct{ mock.Mock }

func (m *mockCourtRepo) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, court)
	if c := args.Get(0); c != nil {
		return c.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourtRepo) List(ctx context.Context, status *domain.CourtStatus) ([]*domain.Court, error) {
	args := m.Called(ctx, status)
	if c := args.Get(0); c != nil {
		return c.([]*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourtRepo) Update(ctx context.Context, id int64, court *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, id, court)
	if c := args.Get(0); c != nil {
		return c.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourtRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) CountActiveByCourt(ctx context.Context, courtID int64, after time.Time) (int, error) {
	args := m.Called(ctx, courtID, after)
	return args.Int(0), args.Error(1)
}

type stubUserRepo struct{}

func (stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	switch id {
	case adminID:
		return &domain.User{ID: id, Role: domain.RoleAdmin}, nil
	case userID:
		return &domain.User{ID: id, Role: domain.RoleUser}, nil
	default:
		return nil, userRepo.ErrUserNotFound
	}
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

func newTestService() (*Service, *mockCourtRepo, *mockReservationRepo) {
	courts := &mockCourtRepo{}
	reservations := &mockReservationRepo{}
	s := NewService(courts, reservations, stubUserRepo{}, baseURL, logger.Nop())
	s.timeProvider = &fixedTime{now: now}
	return s, courts, reservations
}

func sampleCourt() *domain.Court {
	return &domain.Court{
		ID:           3,
		Name:         "Cancha 3",
		Capacity:     4,
		PricePerHour: 10000,
		Covered:      true,
		Status:       domain.CourtAvailable,
		ImagePath:    ptr.Ptr("/cancha-3.jpg"),
	}
}

func TestCreate_Success(t *testing.T) {
	s, courts, _ := newTestService()

	courts.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.Name == "Cancha 3" && c.Status == domain.CourtAvailable
	})).Return(sampleCourt(), nil)

	resp, err := s.Create(context.Background(), &models.CreateCourtRequest{
		UserID:       adminID,
		Name:         "  Cancha 3 ",
		Capacity:     4,
		PricePerHour: 10000,
		Covered:      true,
		ImagePath:    ptr.Ptr("/cancha-3.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "https://cdn.example.com/courts/cancha-3.jpg", *resp.ImageURL)
	courts.AssertExpectations(t)
}

func TestCreate_ValidationViolations(t *testing.T) {
	s, courts, _ := newTestService()

	_, err := s.Create(context.Background(), &models.CreateCourtRequest{
		UserID:       adminID,
		Name:         "",
		Capacity:     0,
		PricePerHour: -1,
		Status:       ptr.Ptr("closed"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	fields := make([]string, 0)
	for _, v := range validation.Violations(err) {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"name", "capacity", "pricePerHour", "status"}, fields)
	courts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RequiresAdmin(t *testing.T) {
	s, courts, _ := newTestService()

	for _, caller := range []int64{userID, 404} {
		_, err := s.Create(context.Background(), &models.CreateCourtRequest{UserID: caller, Name: "Cancha", Capacity: 4})
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
	courts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByID(t *testing.T) {
	s, courts, _ := newTestService()

	court := sampleCourt()
	court.ImagePath = nil
	courts.On("GetByID", mock.Anything, int64(3)).Return(court, nil)
	courts.On("GetByID", mock.Anything, int64(9)).Return(nil, courtRepo.ErrCourtNotFound)

	resp, err := s.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, resp.ImageURL)
	assert.Equal(t, "available", resp.Status)

	_, err = s.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	s, courts, _ := newTestService()

	courts.On("List", mock.Anything, mock.MatchedBy(func(st *domain.CourtStatus) bool {
		return st != nil && *st == domain.CourtMaintenance
	})).Return([]*domain.Court{}, nil)

	resp, err := s.List(context.Background(), ptr.Ptr("maintenance"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Courts)
	assert.Empty(t, resp.Courts)

	_, err = s.List(context.Background(), ptr.Ptr("broken"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialDoesNotTouchOtherFields(t *testing.T) {
	s, courts, _ := newTestService()

	courts.On("GetByID", mock.Anything, int64(3)).Return(sampleCourt(), nil)
	updated := sampleCourt()
	updated.Status = domain.CourtMaintenance
	courts.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(c *domain.Court) bool {
		return c.Status == domain.CourtMaintenance && c.Capacity == 4 && c.Name == "Cancha 3" && c.ImagePath != nil
	})).Return(updated, nil)

	resp, err := s.Update(context.Background(), 3, &models.UpdateCourtRequest{
		UserID: adminID,
		Status: ptr.Ptr("maintenance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Status)
	assert.Equal(t, 4, resp.Capacity)
	assert.Equal(t, "Cancha 3", resp.Name)
}

func TestUpdate_InvalidCapacity(t *testing.T) {
	s, courts, _ := newTestService()

	courts.On("GetByID", mock.Anything, int64(3)).Return(sampleCourt(), nil)

	_, err := s.Update(context.Background(), 3, &models.UpdateCourtRequest{UserID: adminID, Capacity: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	courts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	t.Run("active reservations block deletion", func(t *testing.T) {
		s, courts, reservations := newTestService()
		courts.On("GetByID", mock.Anything, int64(3)).Return(sampleCourt(), nil)
		reservations.On("CountActiveByCourt", mock.Anything, int64(3), now).Return(2, nil)

		err := s.Delete(context.Background(), 3, adminID)
		assert.ErrorIs(t, err, ErrHasActiveReservations)
		courts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("history blocks deletion", func(t *testing.T) {
		s, courts, reservations := newTestService()
		courts.On("GetByID", mock.Anything, int64(3)).Return(sampleCourt(), nil)
		reservations.On("CountActiveByCourt", mock.Anything, int64(3), now).Return(0, nil)
		courts.On("Delete", mock.Anything, int64(3)).
			Return(errors.Join(courtRepo.ErrHasReservations, errors.New("fk violation")))

		err := s.Delete(context.Background(), 3, adminID)
		assert.ErrorIs(t, err, ErrHasReservationHistory)
	})

	t.Run("deleted", func(t *testing.T) {
		s, courts, reservations := newTestService()
		courts.On("GetByID", mock.Anything, int64(3)).Return(sampleCourt(), nil)
		reservations.On("CountActiveByCourt", mock.Anything, int64(3), now).Return(0, nil)
		courts.On("Delete", mock.Anything, int64(3)).Return(nil)

		require.NoError(t, s.Delete(context.Background(), 3, adminID))
		courts.AssertExpectations(t)
	})

	t.Run("not admin", func(t *testing.T) {
		s, courts, _ := newTestService()

		err := s.Delete(context.Background(), 3, userID)
		assert.ErrorIs(t, err, ErrAccessDenied)
		courts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
