package models

import (
	"time"

	"github.com/google/uuid"
)

// CreditLot is the persistence model for carbon credit lots
type CreditLot struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID               uuid.UUID `gorm:"type:uuid;not null;index"`
	AssessmentID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CreditAmount            string    `gorm:"type:decimal(12,2);not null"`
	IssuanceDate            time.Time `gorm:"not null"`
	ExpiryDate              time.Time
	CertificateID           string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Status                  string  `gorm:"type:varchar(20);default:'available'"`
	PricePerCredit          string  `gorm:"type:decimal(10,2)"`
	VerificationDocumentURL *string `gorm:"type:varchar(255)"`

	Project    *Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Assessment *Assessment `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (CreditLot) TableName() string {
	return "carbon_credits"
}
