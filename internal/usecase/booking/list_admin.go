package booking

import (
	"context"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/dto"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
)

type ListAdminBookings struct {
	repo domain.Repository
}

func NewListAdminBookings(repo domain.Repository) *ListAdminBookings {
	return &ListAdminBookings{repo: repo}
}

func (uc *ListAdminBookings) Execute(
	ctx context.Context,
	bookingType string,
	status string,
) ([]dto.AdminBookingDTO, error) {

	t := domain.Type(bookingType)
	if !domain.IsValidType(t) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	s := domain.Status(status)
	if !domain.IsValidStatus(s) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	bookings, err := uc.repo.ListForAdmin(ctx, t, s)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		pets := make([]dto.BookingPetDTO, 0, len(b.Pets))
		for _, p := range b.Pets {
			pets = append(pets, dto.BookingPetDTO{
				ID:    p.ID,
				Name:  p.Name,
				Breed: p.Breed,
			})
		}

		out = append(out, dto.AdminBookingDTO{
			ID:                b.ID,
			Reference:         b.Reference,
			Type:              b.Type,
			Status:            b.Status,
			AppointmentDate:   b.AppointmentDate,
			AppointmentTime:   b.AppointmentTime,
			AntiRabiesDate:    b.AntiRabiesDate,
			HotelCheckoutDate: b.HotelCheckoutDate,
			HotelCheckoutTime: b.HotelCheckoutTime,
			Pets:              pets,
			OwnerName:         b.User.FullName,
			OwnerEmail:        b.User.Email,
			CreatedAt:         b.CreatedAt,
		})
	}

	return out, nil
}
