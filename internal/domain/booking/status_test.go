package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

func TestCanDecide(t *testing.T) {
	assert.NoError(t, CanDecide(StatusApproved))
	assert.NoError(t, CanDecide(StatusRejected))

	err := CanDecide(StatusPending)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	err = CanDecide(Status("done"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestDecideSetsStatusAndTimestamp(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, Decide(b, StatusApproved, now))
	assert.Equal(t, "approved", b.Status)
	assert.Equal(t, now, *b.DecidedAt)

	// flipping a decided booking is allowed
	later := now.Add(time.Hour)
	assert.NoError(t, Decide(b, StatusRejected, later))
	assert.Equal(t, "rejected", b.Status)
	assert.Equal(t, later, *b.DecidedAt)
}

func TestValidateTypeFields(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		bookingType  Type
		antiRabies   *time.Time
		checkoutDate *time.Time
		checkoutTime string
		wantCode     string
	}{
		{"grooming ok", TypeGrooming, &date, nil, "", ""},
		{"grooming missing anti-rabies", TypeGrooming, nil, nil, "", "anti_rabies_date_required"},
		{"hotel ok", TypeHotel, nil, &date, "11:00", ""},
		{"hotel missing checkout date", TypeHotel, nil, nil, "11:00", "hotel_checkout_required"},
		{"hotel missing checkout time", TypeHotel, nil, &date, "", "hotel_checkout_required"},
		{"unknown type", Type("daycare"), nil, nil, "", "invalid_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTypeFields(tt.bookingType, tt.antiRabies, tt.checkoutDate, tt.checkoutTime)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode))
			}
		})
	}
}

func TestIsValidTypeAndStatus(t *testing.T) {
	assert.True(t, IsValidType(TypeGrooming))
	assert.True(t, IsValidType(TypeHotel))
	assert.False(t, IsValidType(Type("boarding")))

	assert.True(t, IsValidStatus(StatusPending))
	assert.False(t, IsValidStatus(Status("cancelled")))
}
