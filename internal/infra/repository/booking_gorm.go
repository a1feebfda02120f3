package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Pets
// --------------------------------------------------

func (r *BookingGormRepository) GetOwnedPets(
	ctx context.Context,
	ownerID uint,
	petIDs []uint,
) ([]models.Pet, error) {

	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, petIDs).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// --------------------------------------------------
// Booking (create / read)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// b.Pets is pre-loaded with owned pets; gorm fills booking_pets rows
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingForOwner(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Pets").
		Where("id = ? AND user_id = ?", bookingID, ownerID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uint,
	bookingType domain.Type,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Pets").
		Where("user_id = ? AND type = ?", ownerID, string(bookingType)).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListForAdmin(
	ctx context.Context,
	bookingType domain.Type,
	status domain.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Pets").
		Preload("User").
		Where("type = ? AND status = ?", string(bookingType), string(status)).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change / delete)
// --------------------------------------------------

func (r *BookingGormRepository) SetStatus(
	ctx context.Context,
	bookingID uint,
	target domain.Status,
	decidedAt time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":     string(target),
			"decided_at": decidedAt,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingGormRepository) DeleteForOwner(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
) (bool, error) {

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ? AND user_id = ?", bookingID, ownerID).
			Delete(&models.Booking{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			deleted = true
			return tx.Exec(
				"DELETE FROM booking_pets WHERE booking_id = ?",
				bookingID,
			).Error
		}
		return nil
	})

	return deleted, err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
