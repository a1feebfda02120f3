package booking

import "github.com/hungrypaws/hungry-paws-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// InitialStatus is the status every booking is created with.
func InitialStatus() Status {
	return StatusPending
}

// CanDecide validates an admin decision target. Only approved and rejected
// are reachable by decision; flipping between the two is allowed, so an
// already-approved booking can still be rejected and vice versa.
func CanDecide(target Status) error {
	if target != StatusApproved && target != StatusRejected {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// ===============================
// Booking Type
// ===============================

type Type string

const (
	TypeGrooming Type = "grooming"
	TypeHotel    Type = "hotel"
)

func IsValidType(t Type) bool {
	return t == TypeGrooming || t == TypeHotel
}
