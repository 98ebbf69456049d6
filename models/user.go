package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	// Identity-provider subject. Mapped to this row once by the auth
	// middleware; everything below that boundary uses the internal ID.
	ExternalID string `gorm:"uniqueIndex"`

	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	ProfilePicture string
	Verified       bool
	VerifyCode     string
	Disabled       bool
}
