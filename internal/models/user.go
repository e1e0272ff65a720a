package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	FullName     string `gorm:"size:100" json:"fullName"`
	Role         Role   `gorm:"size:20;default:'user'" json:"role"`
	ProfileImage string `gorm:"size:255" json:"profileImage"`
	Bio          string `gorm:"type:text" json:"bio"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
