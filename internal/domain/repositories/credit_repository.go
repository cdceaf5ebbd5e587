package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// CreditRepository defines credit lot data operations
type CreditRepository interface {
	Create(ctx context.Context, lot *entities.CreditLot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CreditLot, error)
	// GetByIDForUpdate fetches the lot under a row-level lock so two
	// concurrent purchases cannot both pass the availability check.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.CreditLot, error)
	GetByAssessmentID(ctx context.Context, assessmentID uuid.UUID) ([]*entities.CreditLot, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.CreditLot, error)
	ListAvailable(ctx context.Context, limit, offset int) ([]*entities.CreditListing, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CreditStatus) error
	UpdateAmountAndStatus(ctx context.Context, id uuid.UUID, amount decimal.Decimal, status entities.CreditStatus) error
	// MarkExpired flips available lots past their expiry date to expired.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}
