package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SatelliteObservation is a point-in-time vegetation sample for a project.
// Append-only, never mutated.
type SatelliteObservation struct {
	ID                      uuid.UUID       `json:"id"`
	ProjectID               uuid.UUID       `json:"projectId"`
	CaptureDate             time.Time       `json:"captureDate"`
	NDVIValue               decimal.Decimal `json:"ndviValue"`
	LandCoverClassification string          `json:"landCoverClassification"`
	CloudCoverPercentage    decimal.Decimal `json:"cloudCoverPercentage"`
	Source                  string          `json:"source"`
	RawDataURL              string          `json:"rawDataUrl"`
	ProcessedDataURL        string          `json:"processedDataUrl"`
}
