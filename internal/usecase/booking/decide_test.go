package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
)

func TestDecideBookingApprove(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDecideBooking(repo, nopRecorder{})

	repo.On("SetStatus", mock.Anything, uint(5), domain.StatusApproved, mock.Anything).
		Return(true, nil)

	err := uc.Execute(context.Background(), 9, 5, domain.StatusApproved)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDecideBookingIsIdempotent(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDecideBooking(repo, nopRecorder{})

	repo.On("SetStatus", mock.Anything, uint(5), domain.StatusApproved, mock.Anything).
		Return(true, nil).Twice()

	assert.NoError(t, uc.Execute(context.Background(), 9, 5, domain.StatusApproved))
	assert.NoError(t, uc.Execute(context.Background(), 9, 5, domain.StatusApproved))
	repo.AssertExpectations(t)
}

func TestDecideBookingRejectsInvalidTarget(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDecideBooking(repo, nopRecorder{})

	err := uc.Execute(context.Background(), 9, 5, domain.StatusPending)

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideBookingNotFound(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDecideBooking(repo, nopRecorder{})

	repo.On("SetStatus", mock.Anything, uint(404), domain.StatusRejected, mock.Anything).
		Return(false, nil)

	err := uc.Execute(context.Background(), 9, 404, domain.StatusRejected)

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestDeleteBookingNotOwned(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDeleteBooking(repo, nopRecorder{})

	repo.On("DeleteForOwner", mock.Anything, uint(5), uint(2)).Return(false, nil)

	err := uc.Execute(context.Background(), 2, 5)

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
