package booking

import (
	"context"
	"time"

	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type Repository interface {
	// -------- Pets --------
	GetOwnedPets(
		ctx context.Context,
		ownerID uint,
		petIDs []uint,
	) ([]models.Pet, error)

	// -------- Booking (create / read) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingForOwner(
		ctx context.Context,
		bookingID uint,
		ownerID uint,
	) (*models.Booking, error)

	ListForOwner(
		ctx context.Context,
		ownerID uint,
		bookingType Type,
	) ([]models.Booking, error)

	ListForAdmin(
		ctx context.Context,
		bookingType Type,
		status Status,
	) ([]models.Booking, error)

	// -------- Booking (state change / delete) --------

	// SetStatus performs a single conditional UPDATE keyed on the booking id
	// and reports whether a row matched.
	SetStatus(
		ctx context.Context,
		bookingID uint,
		target Status,
		decidedAt time.Time,
	) (bool, error)

	// DeleteForOwner deletes only when the owner matches; reports whether a
	// row was removed.
	DeleteForOwner(
		ctx context.Context,
		bookingID uint,
		ownerID uint,
	) (bool, error)
}
