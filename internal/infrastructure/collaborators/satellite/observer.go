// Package satellite provides the vegetation observation collaborator.
package satellite

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// Observer produces a point-in-time vegetation sample for a location.
type Observer interface {
	Observe(ctx context.Context, lat, lng, area decimal.Decimal, unit entities.AreaUnit) (*entities.SatelliteObservation, error)
}
