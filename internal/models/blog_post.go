package models

import "time"

type BlogPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	AuthorID uint   `gorm:"not null" json:"authorId"`
	Category string `gorm:"size:50;not null" json:"category"`
	ImageURL string `gorm:"size:255" json:"imageUrl"`
	Featured bool   `gorm:"default:false" json:"featured"`

	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
