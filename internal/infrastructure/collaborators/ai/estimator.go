// Package ai provides the carbon estimation collaborator.
package ai

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// EstimateInput carries the project attributes and latest observation an
// estimate is derived from.
type EstimateInput struct {
	ProjectType entities.ProjectType
	AreaSize    decimal.Decimal
	AreaUnit    entities.AreaUnit
	Observation *entities.SatelliteObservation
}

// EstimateResult is the typed outcome of an estimation. Fallback marks results
// produced by the deterministic formula rather than the model.
type EstimateResult struct {
	CarbonEstimate  decimal.Decimal `json:"carbon_estimate"`
	ConfidenceScore decimal.Decimal `json:"confidence_score"`
	Methodology     string          `json:"methodology"`
	DataSources     string          `json:"data_sources"`
	ModelVersion    string          `json:"model_version"`
	Fallback        bool            `json:"-"`
}

// Estimator produces a carbon sequestration estimate for a project.
type Estimator interface {
	Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error)
}

// ReportInput carries project and assessment data for report generation.
type ReportInput struct {
	ProjectName     string
	ProjectType     entities.ProjectType
	LocationLat     decimal.Decimal
	LocationLng     decimal.Decimal
	AreaSize        decimal.Decimal
	AreaUnit        entities.AreaUnit
	StartDate       string
	CarbonEstimate  decimal.Decimal
	ConfidenceScore decimal.Decimal
	Methodology     string
}

// ReportGenerator produces verification report content. Best effort; failure
// never blocks assessment approval.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, input ReportInput) (string, error)
}
