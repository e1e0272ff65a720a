package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Price in the minor currency unit (cents).
	Price    int    `gorm:"not null" json:"price"`
	Duration int    `gorm:"not null" json:"duration"`
	ImageURL string `gorm:"size:255" json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
