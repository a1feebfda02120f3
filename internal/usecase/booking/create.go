package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
	"github.com/hungrypaws/hungry-paws-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	OwnerID uint

	Type   string
	PetIDs []uint

	Date string // 2006-01-02
	Time string // 15:04

	AntiRabiesDate    string
	HotelCheckoutDate string
	HotelCheckoutTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateBooking(
	repo domain.Repository,
	recorder audit.Recorder,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: recorder,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	bookingType := domain.Type(in.Type)
	if !domain.IsValidType(bookingType) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	if len(in.PetIDs) == 0 {
		return nil, httperr.ErrBusiness("pets_required")
	}

	loc := timezone.Location()

	appointmentDate, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	antiRabiesDate, err := parseOptionalDate(in.AntiRabiesDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	hotelCheckoutDate, err := parseOptionalDate(in.HotelCheckoutDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if in.HotelCheckoutTime != "" {
		if _, err := time.Parse("15:04", in.HotelCheckoutTime); err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	if err := domain.ValidateTypeFields(
		bookingType,
		antiRabiesDate,
		hotelCheckoutDate,
		in.HotelCheckoutTime,
	); err != nil {
		return nil, err
	}

	// every requested pet must exist and belong to the caller
	pets, err := uc.repo.GetOwnedPets(ctx, in.OwnerID, in.PetIDs)
	if err != nil {
		return nil, err
	}
	if len(pets) != len(uniquePetIDs(in.PetIDs)) {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	b := &models.Booking{
		Reference:         uuid.NewString(),
		UserID:            in.OwnerID,
		Type:              string(bookingType),
		Pets:              pets,
		AppointmentDate:   appointmentDate,
		AppointmentTime:   in.Time,
		AntiRabiesDate:    antiRabiesDate,
		HotelCheckoutDate: hotelCheckoutDate,
		HotelCheckoutTime: in.HotelCheckoutTime,
		Status:            string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"type": b.Type},
	})

	return b, nil
}

func parseOptionalDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func uniquePetIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
