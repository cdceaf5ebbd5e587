package models

import (
	"time"

	"github.com/google/uuid"
)

// SatelliteObservation is the persistence model for satellite samples
type SatelliteObservation struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID               uuid.UUID `gorm:"type:uuid;not null;index"`
	CaptureDate             time.Time `gorm:"not null"`
	NDVIValue               string    `gorm:"column:ndvi_value;type:decimal(5,4)"`
	LandCoverClassification string    `gorm:"type:varchar(50)"`
	CloudCoverPercentage    string    `gorm:"type:decimal(5,2)"`
	Source                  string    `gorm:"type:varchar(50);not null"`
	RawDataURL              string    `gorm:"type:varchar(255)"`
	ProcessedDataURL        string    `gorm:"type:varchar(255)"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (SatelliteObservation) TableName() string {
	return "satellite_observations"
}
