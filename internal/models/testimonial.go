package models

import "time"

type Testimonial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is nil for anonymous submissions.
	UserID *uint `json:"userId"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Rating    int    `gorm:"not null" json:"rating"`
	ServiceID *uint  `json:"serviceId"`
	Approved  bool   `gorm:"default:false" json:"approved"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
