package booking

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type GetOwnerBooking struct {
	repo domain.Repository
}

func NewGetOwnerBooking(repo domain.Repository) *GetOwnerBooking {
	return &GetOwnerBooking{repo: repo}
}

func (uc *GetOwnerBooking) Execute(
	ctx context.Context,
	ownerID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForOwner(ctx, bookingID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return b, nil
}
