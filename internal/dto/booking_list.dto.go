package dto

import "time"

type BookingPetDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
}

// AdminBookingDTO is a booking joined with its pets and the owning user's
// display fields, shaped for the admin dashboard list.
type AdminBookingDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Type      string `json:"type"`
	Status    string `json:"status"`

	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`

	AntiRabiesDate    *time.Time `json:"anti_rabies_date,omitempty"`
	HotelCheckoutDate *time.Time `json:"hotel_checkout_date,omitempty"`
	HotelCheckoutTime string     `json:"hotel_checkout_time,omitempty"`

	Pets []BookingPetDTO `json:"pets"`

	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`

	CreatedAt time.Time `json:"created_at"`
}
