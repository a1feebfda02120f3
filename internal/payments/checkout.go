package payments

import (
	"context"
	"fmt"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

// Flat price list, PHP. Hotel stays are charged per pet per night.
const (
	GroomingPrice   = 450.0
	HotelNightPrice = 700.0
)

// PriceFor computes the checkout total for a booking.
func PriceFor(b *models.Booking) float64 {
	petCount := len(b.Pets)
	if petCount == 0 {
		petCount = 1
	}

	if domain.Type(b.Type) == domain.TypeHotel {
		return float64(petCount*HotelNights(b)) * HotelNightPrice
	}
	return float64(petCount) * GroomingPrice
}

// HotelNights counts nights between check-in and checkout, minimum one.
func HotelNights(b *models.Booking) int {
	if b.HotelCheckoutDate == nil {
		return 1
	}
	nights := int(b.HotelCheckoutDate.Sub(b.AppointmentDate).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

type Checkout struct {
	prefs preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

// CreateForBooking creates a Mercado Pago checkout preference and returns
// the init point URL the client is redirected to.
func (ch *Checkout) CreateForBooking(
	ctx context.Context,
	b *models.Booking,
) (string, error) {

	names := make([]string, 0, len(b.Pets))
	for _, p := range b.Pets {
		names = append(names, p.Name)
	}

	title := fmt.Sprintf("Hungry Paws %s booking", b.Type)
	if len(names) > 0 {
		title = fmt.Sprintf("%s (%s)", title, strings.Join(names, ", "))
	}

	req := preference.Request{
		ExternalReference: b.Reference,
		Items: []preference.ItemRequest{
			{
				ID:        fmt.Sprintf("booking-%d", b.ID),
				Title:     title,
				Quantity:  1,
				UnitPrice: PriceFor(b),
			},
		},
	}

	resp, err := ch.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
