package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// TransactionRepository implements trade record data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	m := &models.Transaction{
		ID:              tx.ID,
		CreditID:        tx.CreditID,
		BuyerID:         tx.BuyerID,
		SellerID:        tx.SellerID,
		Amount:          tx.Amount.String(),
		PricePerUnit:    tx.PricePerUnit.String(),
		TotalPrice:      tx.TotalPrice.String(),
		TransactionDate: tx.TransactionDate,
		Status:          string(tx.Status),
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTransactionEntity(&m), nil
}

// GetByCreditID gets all transactions referencing one credit lot
func (r *TransactionRepository) GetByCreditID(ctx context.Context, creditID uuid.UUID) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("credit_id = ?", creditID).
		Order("transaction_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, toTransactionEntity(&ms[i]))
	}
	return txs, nil
}

// GetByUserID gets transactions where the user is buyer or seller
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = -1 // gorm: no LIMIT clause
	}

	var ms []models.Transaction
	if err := db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("transaction_date DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, toTransactionEntity(&ms[i]))
	}
	return txs, int(total), nil
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:              m.ID,
		CreditID:        m.CreditID,
		BuyerID:         m.BuyerID,
		SellerID:        m.SellerID,
		Amount:          decimalOrZero(m.Amount),
		PricePerUnit:    decimalOrZero(m.PricePerUnit),
		TotalPrice:      decimalOrZero(m.TotalPrice),
		TransactionDate: m.TransactionDate,
		Status:          entities.TransactionStatus(m.Status),
	}
}
