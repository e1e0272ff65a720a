package models

import "time"

type Horoscope struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Sign is one of the 12 zodiac signs, lowercase ("aries", ...).
	// Uniqueness per (sign, date) is enforced at the application
	// layer, not by the schema.
	Sign     string `gorm:"size:20;not null" json:"sign"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Date     string `gorm:"size:10;not null" json:"date"`
	AuthorID uint   `gorm:"not null" json:"authorId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
