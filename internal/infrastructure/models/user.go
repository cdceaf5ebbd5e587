package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the persistence model for users
type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Username           string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email              string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(200);not null"`
	UserType           string    `gorm:"type:varchar(20);not null"`
	VerificationStatus string    `gorm:"type:varchar(20);default:'pending'"`
	ProfileImgURL      *string   `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
