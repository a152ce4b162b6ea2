package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Username       string         `json:"username" gorm:"not null;uniqueIndex"` // Stored lower-cased
	Name           string         `json:"name" gorm:"not null"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash   string         `json:"-" gorm:"not null"`
	DateOfBirth    *time.Time     `json:"dob,omitempty"`
	Bio            string         `json:"bio,omitempty" gorm:"type:text"`
	ProfilePicture string         `json:"profile_picture,omitempty" gorm:"type:text"`
	TotalPoints    int            `json:"total_points" gorm:"not null;default:0;index:idx_users_total_points,sort:desc"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
