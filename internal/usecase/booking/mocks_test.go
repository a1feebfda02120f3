package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetOwnedPets(ctx context.Context, ownerID uint, petIDs []uint) ([]models.Pet, error) {
	args := m.Called(ctx, ownerID, petIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetBookingForOwner(ctx context.Context, bookingID, ownerID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) ListForOwner(ctx context.Context, ownerID uint, bookingType domain.Type) ([]models.Booking, error) {
	args := m.Called(ctx, ownerID, bookingType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListForAdmin(ctx context.Context, bookingType domain.Type, status domain.Status) ([]models.Booking, error) {
	args := m.Called(ctx, bookingType, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) SetStatus(ctx context.Context, bookingID uint, target domain.Status, decidedAt time.Time) (bool, error) {
	args := m.Called(ctx, bookingID, target, decidedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteForOwner(ctx context.Context, bookingID, ownerID uint) (bool, error) {
	args := m.Called(ctx, bookingID, ownerID)
	return args.Bool(0), args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)

type nopRecorder struct{}

func (nopRecorder) Dispatch(audit.Event) {}
