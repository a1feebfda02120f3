package booking

import (
	"context"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/timezone"
)

// DecideBooking is the admin approval/rejection transition. Repeating the
// same decision is a no-op success; flipping a decided booking to the other
// status is allowed.
type DecideBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDecideBooking(
	repo domain.Repository,
	recorder audit.Recorder,
) *DecideBooking {
	return &DecideBooking{
		repo:  repo,
		audit: recorder,
	}
}

func (uc *DecideBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
	target domain.Status,
) error {

	if err := domain.CanDecide(target); err != nil {
		return err
	}

	found, err := uc.repo.SetStatus(ctx, bookingID, target, timezone.Now())
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrBusiness("booking_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_" + string(target),
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
