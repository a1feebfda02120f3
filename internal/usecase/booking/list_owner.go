package booking

import (
	"context"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type ListOwnerBookings struct {
	repo domain.Repository
}

func NewListOwnerBookings(repo domain.Repository) *ListOwnerBookings {
	return &ListOwnerBookings{repo: repo}
}

func (uc *ListOwnerBookings) Execute(
	ctx context.Context,
	ownerID uint,
	bookingType string,
) ([]models.Booking, error) {

	t := domain.Type(bookingType)
	if !domain.IsValidType(t) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	return uc.repo.ListForOwner(ctx, ownerID, t)
}
