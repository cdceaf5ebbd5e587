package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserType represents the kind of account holder
type UserType string

const (
	UserTypeIndividual   UserType = "individual"
	UserTypeOrganization UserType = "organization"
)

// UserVerificationStatus represents identity verification progress
type UserVerificationStatus string

const (
	UserVerificationPending  UserVerificationStatus = "pending"
	UserVerificationVerified UserVerificationStatus = "verified"
)

// User represents a marketplace participant
type User struct {
	ID                 uuid.UUID              `json:"id"`
	Username           string                 `json:"username"`
	Email              string                 `json:"email"`
	PasswordHash       string                 `json:"-"`
	UserType           UserType               `json:"userType"`
	VerificationStatus UserVerificationStatus `json:"verificationStatus"`
	ProfileImgURL      null.String            `json:"profileImgUrl,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// RegisterUserInput represents input for user registration
type RegisterUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	UserType string `json:"userType" binding:"required,oneof=individual organization"`
}

// LoginInput represents input for authentication
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
