package models

import "time"

// Pet belongs to exactly one owner; all reads and writes are scoped to that
// owner's id.
type Pet struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Breed  string `gorm:"size:100;not null" json:"breed"`
	Age    int    `json:"age"`
	Gender string `gorm:"size:10;not null" json:"gender"`

	PhotoURL string `gorm:"size:255" json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
