package ai

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// Conservative per-acre annual sequestration rates (tons CO2e/acre/year).
var fallbackRates = map[entities.ProjectType]decimal.Decimal{
	entities.ProjectTypeForestry:     decimal.NewFromFloat(3.5),
	entities.ProjectTypeAgriculture:  decimal.NewFromFloat(1.2),
	entities.ProjectTypeAgroforestry: decimal.NewFromFloat(2.8),
	entities.ProjectTypeWetland:      decimal.NewFromFloat(4.8),
	entities.ProjectTypeOther:        decimal.NewFromInt(1),
}

// hectares to acres
var hectareAcres = decimal.NewFromFloat(2.47)

const (
	fallbackConfidence   = 70
	fallbackMethodology  = "AI-assisted estimation with standard factors"
	fallbackModelVersion = "fallback"
	fallbackDataSources  = `{"satellite":"Basic NDVI analysis","standards":"IPCC guidelines","factors":"Conservative estimation factors"}`
)

// FallbackEstimate computes the deterministic estimate used when the model is
// unreachable or returns unusable output: area in acres times a fixed per-type
// annual rate, rounded to two decimal places.
func FallbackEstimate(projectType entities.ProjectType, area decimal.Decimal, unit entities.AreaUnit) *EstimateResult {
	acres := area
	if unit == entities.AreaUnitHectares {
		acres = area.Mul(hectareAcres)
	}

	rate, ok := fallbackRates[projectType]
	if !ok {
		rate = fallbackRates[entities.ProjectTypeOther]
	}

	return &EstimateResult{
		CarbonEstimate:  acres.Mul(rate).Round(2),
		ConfidenceScore: decimal.NewFromInt(fallbackConfidence),
		Methodology:     fallbackMethodology,
		DataSources:     fallbackDataSources,
		ModelVersion:    fallbackModelVersion,
		Fallback:        true,
	}
}

// FallbackEstimator satisfies Estimator using the deterministic formula only.
// Used when no model API key is configured.
type FallbackEstimator struct{}

func (FallbackEstimator) Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FallbackEstimate(input.ProjectType, input.AreaSize, input.AreaUnit), nil
}
