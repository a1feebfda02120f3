package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Contact      string `gorm:"size:20" json:"contact"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
