package booking

import (
	"time"

	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Decide(b *models.Booking, target Status, now time.Time) error {
	if err := CanDecide(target); err != nil {
		return err
	}

	b.Status = string(target)
	b.DecidedAt = &now
	return nil
}

// ValidateTypeFields enforces the per-type required fields at creation time.
// Grooming needs a valid anti-rabies vaccination date; hotel stays need a
// checkout date and time.
func ValidateTypeFields(
	t Type,
	antiRabiesDate *time.Time,
	hotelCheckoutDate *time.Time,
	hotelCheckoutTime string,
) error {

	switch t {
	case TypeGrooming:
		if antiRabiesDate == nil {
			return httperr.ErrBusiness("anti_rabies_date_required")
		}
	case TypeHotel:
		if hotelCheckoutDate == nil || hotelCheckoutTime == "" {
			return httperr.ErrBusiness("hotel_checkout_required")
		}
	default:
		return httperr.ErrBusiness("invalid_type")
	}

	return nil
}
