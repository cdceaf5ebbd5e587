package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// AssessmentStatus represents verification progress of an assessment
type AssessmentStatus string

const (
	AssessmentStatusPending  AssessmentStatus = "pending"
	AssessmentStatusApproved AssessmentStatus = "approved"
	AssessmentStatusRejected AssessmentStatus = "rejected"
)

// Assessment represents an AI/satellite-derived carbon estimate for a project.
// Immutable once created except for verification status and report reference.
type Assessment struct {
	ID                 uuid.UUID        `json:"id"`
	ProjectID          uuid.UUID        `json:"projectId"`
	AssessmentDate     time.Time        `json:"assessmentDate"`
	CarbonEstimate     decimal.Decimal  `json:"carbonEstimate"`
	ConfidenceScore    decimal.Decimal  `json:"confidenceScore"`
	Methodology        string           `json:"methodology"`
	DataSources        string           `json:"dataSources"`
	AIModelVersion     string           `json:"aiModelVersion"`
	VerificationStatus AssessmentStatus `json:"verificationStatus"`
	ReportURL          null.String      `json:"reportUrl,omitempty"`
}

// AssessmentResult is returned by the assessment recorder.
type AssessmentResult struct {
	AssessmentID  uuid.UUID `json:"assessmentId"`
	ObservationID uuid.UUID `json:"observationId"`
	Fallback      bool      `json:"fallback"`
}
