package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationLog is the persistence model for AI verification audit records
type VerificationLog struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key"`
	ProjectID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssessmentID     *uuid.UUID `gorm:"type:uuid;index"`
	VerificationDate time.Time  `gorm:"not null"`
	ModelUsed        string     `gorm:"type:varchar(100);not null"`
	InputData        string     `gorm:"type:json"`
	OutputResult     string     `gorm:"type:json"`
	ConfidenceScore  string     `gorm:"type:decimal(5,2)"`
	VerificationType string     `gorm:"type:varchar(20);not null"`

	Project    *Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Assessment *Assessment `gorm:"foreignKey:AssessmentID;constraint:OnDelete:SET NULL"`
}

// TableName overrides the table name
func (VerificationLog) TableName() string {
	return "verification_logs"
}
