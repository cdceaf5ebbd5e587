package models

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is the persistence model for carbon assessments
type Assessment struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID          uuid.UUID `gorm:"type:uuid;not null;index"`
	AssessmentDate     time.Time `gorm:"not null"`
	CarbonEstimate     string    `gorm:"type:decimal(12,2);not null"`
	ConfidenceScore    string    `gorm:"type:decimal(5,2);not null"`
	Methodology        string    `gorm:"type:varchar(100);not null"`
	DataSources        string    `gorm:"type:json;not null"`
	AIModelVersion     string    `gorm:"column:ai_model_version;type:varchar(50);not null"`
	VerificationStatus string    `gorm:"type:varchar(20);default:'pending'"`
	ReportURL          *string   `gorm:"type:varchar(255)"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Assessment) TableName() string {
	return "carbon_assessments"
}
