package models

import "time"

type Subscriber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Subscribed   bool      `gorm:"default:true" json:"subscribed"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
