package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/pkg/crypto"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
	"github.com/LancemDev/greenconnect-test/pkg/metrics"
)

// PurchaseResult is the outcome of a completed purchase
type PurchaseResult struct {
	Transaction *entities.Transaction `json:"transaction"`
	// Purchased is the lot now owned by the buyer
	Purchased *entities.CreditLot `json:"purchased"`
	// Remainder is the seller's leftover lot after a partial purchase, nil
	// when the full lot was bought
	Remainder *entities.CreditLot `json:"remainder,omitempty"`
}

// ExchangeUsecase handles credit purchases
type ExchangeUsecase struct {
	creditRepo  repositories.CreditRepository
	projectRepo repositories.ProjectRepository
	txRepo      repositories.TransactionRepository
	uow         repositories.UnitOfWork
	invalidate  func(ctx context.Context)
}

// NewExchangeUsecase creates a new exchange usecase. invalidate is called
// after a committed purchase to drop stale marketplace listings; it may be
// nil.
func NewExchangeUsecase(
	creditRepo repositories.CreditRepository,
	projectRepo repositories.ProjectRepository,
	txRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
	invalidate func(ctx context.Context),
) *ExchangeUsecase {
	return &ExchangeUsecase{
		creditRepo:  creditRepo,
		projectRepo: projectRepo,
		txRepo:      txRepo,
		uow:         uow,
		invalidate:  invalidate,
	}
}

// Purchase buys amount credits from the given lot on behalf of buyerID.
//
// A full purchase marks the lot sold. A partial purchase shrinks the lot to
// the purchased amount, marks it sold, and creates a sibling lot under a
// fresh certificate carrying the remainder, still available. Either way the
// combined credit amount across resulting lots equals the original lot's
// amount. All writes happen in one transaction with the lot row locked.
func (u *ExchangeUsecase) Purchase(ctx context.Context, buyerID, creditID uuid.UUID, input *entities.PurchaseInput) (*PurchaseResult, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		metrics.PurchasesRejected.WithLabelValues("invalid_amount").Inc()
		return nil, fmt.Errorf("amount must be a positive number: %w", domainerrors.ErrInvalidInput)
	}

	var result *PurchaseResult
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		lot, err := u.creditRepo.GetByIDForUpdate(ctx, creditID)
		if err != nil {
			return err
		}

		if lot.Status != entities.CreditStatusAvailable {
			metrics.PurchasesRejected.WithLabelValues("not_available").Inc()
			return fmt.Errorf("credit lot is %s: %w", lot.Status, domainerrors.ErrNotAvailable)
		}
		if amount.GreaterThan(lot.CreditAmount) {
			metrics.PurchasesRejected.WithLabelValues("insufficient").Inc()
			return fmt.Errorf("requested %s of %s credits: %w", amount, lot.CreditAmount, domainerrors.ErrInsufficientQuantity)
		}

		project, err := u.projectRepo.GetByID(ctx, lot.ProjectID)
		if err != nil {
			return err
		}
		if project.UserID == buyerID {
			metrics.PurchasesRejected.WithLabelValues("same_party").Inc()
			return fmt.Errorf("cannot buy credits from own project: %w", domainerrors.ErrSameParty)
		}

		partial := amount.LessThan(lot.CreditAmount)
		remainder := lot.CreditAmount.Sub(amount)

		if err := u.creditRepo.UpdateAmountAndStatus(ctx, lot.ID, amount, entities.CreditStatusSold); err != nil {
			return err
		}

		var remainderLot *entities.CreditLot
		if partial {
			certificateID, err := crypto.NewCertificateID(lot.ProjectID)
			if err != nil {
				return err
			}
			remainderLot = &entities.CreditLot{
				ProjectID:               lot.ProjectID,
				AssessmentID:            lot.AssessmentID,
				CreditAmount:            remainder,
				IssuanceDate:            lot.IssuanceDate,
				ExpiryDate:              lot.ExpiryDate,
				CertificateID:           certificateID,
				Status:                  entities.CreditStatusAvailable,
				PricePerCredit:          lot.PricePerCredit,
				VerificationDocumentURL: lot.VerificationDocumentURL,
			}
			if err := u.creditRepo.Create(ctx, remainderLot); err != nil {
				return err
			}
		}

		tx := &entities.Transaction{
			CreditID:        lot.ID,
			BuyerID:         buyerID,
			SellerID:        project.UserID,
			Amount:          amount,
			PricePerUnit:    lot.PricePerCredit,
			TotalPrice:      amount.Mul(lot.PricePerCredit).Round(2),
			TransactionDate: time.Now().UTC(),
			Status:          entities.TransactionStatusCompleted,
		}
		if err := u.txRepo.Create(ctx, tx); err != nil {
			return err
		}

		purchased := *lot
		purchased.CreditAmount = amount
		purchased.Status = entities.CreditStatusSold

		result = &PurchaseResult{
			Transaction: tx,
			Purchased:   &purchased,
			Remainder:   remainderLot,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind := "full"
	if result.Remainder != nil {
		kind = "partial"
	}
	metrics.PurchasesCompleted.WithLabelValues(kind).Inc()

	if u.invalidate != nil {
		u.invalidate(ctx)
	}

	logger.Info(ctx, "purchase completed",
		zap.String("transaction_id", result.Transaction.ID.String()),
		zap.String("credit_id", creditID.String()),
		zap.String("amount", result.Transaction.Amount.String()),
		zap.String("total_price", result.Transaction.TotalPrice.String()),
		zap.String("kind", kind))

	return result, nil
}

// History returns the transactions in which userID participated as buyer or
// seller, newest first, with the total count.
func (u *ExchangeUsecase) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error) {
	return u.txRepo.GetByUserID(ctx, userID, limit, offset)
}
