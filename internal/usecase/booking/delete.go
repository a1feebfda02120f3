package booking

import (
	"context"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteBooking(
	repo domain.Repository,
	recorder audit.Recorder,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: recorder,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	ownerID uint,
	bookingID uint,
) error {

	deleted, err := uc.repo.DeleteForOwner(ctx, bookingID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("booking_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
