package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"not null;index" json:"userId"`
	ServiceID uint `gorm:"not null" json:"serviceId"`

	// Date is YYYY-MM-DD, Time is the HH:MM slot label.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Notes   string `gorm:"type:text" json:"notes"`
	Status  string `gorm:"size:20;default:'pending'" json:"status"`
	Summary string `gorm:"type:text" json:"summary"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
