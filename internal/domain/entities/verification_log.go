package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerificationType marks which phase of the project lifecycle a verification
// record belongs to
type VerificationType string

const (
	VerificationTypeInitial  VerificationType = "initial"
	VerificationTypePeriodic VerificationType = "periodic"
	VerificationTypeFinal    VerificationType = "final"
)

// VerificationLog is an append-only audit record of an AI invocation made on
// behalf of a project.
type VerificationLog struct {
	ID               uuid.UUID        `json:"id"`
	ProjectID        uuid.UUID        `json:"projectId"`
	AssessmentID     *uuid.UUID       `json:"assessmentId,omitempty"`
	VerificationDate time.Time        `json:"verificationDate"`
	ModelUsed        string           `json:"modelUsed"`
	InputData        string           `json:"inputData"`
	OutputResult     string           `json:"outputResult"`
	ConfidenceScore  decimal.Decimal  `json:"confidenceScore"`
	VerificationType VerificationType `json:"verificationType"`
}
