package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type string `gorm:"size:20;not null" json:"type"`

	Pets []Pet `gorm:"many2many:booking_pets;" json:"pets"`

	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`

	// grooming only
	AntiRabiesDate *time.Time `json:"anti_rabies_date,omitempty"`

	// hotel only
	HotelCheckoutDate *time.Time `json:"hotel_checkout_date,omitempty"`
	HotelCheckoutTime string     `gorm:"size:5" json:"hotel_checkout_time,omitempty"`

	Status    string     `gorm:"size:20;default:'pending'" json:"status"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
