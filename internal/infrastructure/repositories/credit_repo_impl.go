package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// CreditRepository implements credit lot data operations
type CreditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

// Create creates a new credit lot
func (r *CreditRepository) Create(ctx context.Context, lot *entities.CreditLot) error {
	if lot.ID == uuid.Nil {
		lot.ID = uuid.New()
	}
	m := &models.CreditLot{
		ID:                      lot.ID,
		ProjectID:               lot.ProjectID,
		AssessmentID:            lot.AssessmentID,
		CreditAmount:            lot.CreditAmount.String(),
		IssuanceDate:            lot.IssuanceDate,
		ExpiryDate:              lot.ExpiryDate,
		CertificateID:           lot.CertificateID,
		Status:                  string(lot.Status),
		PricePerCredit:          lot.PricePerCredit.String(),
		VerificationDocumentURL: lot.VerificationDocumentURL.Ptr(),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("certificate id %s: %w", lot.CertificateID, domainerrors.ErrConstraintViolation)
		}
		return err
	}
	return nil
}

// GetByID gets a credit lot by ID
func (r *CreditRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CreditLot, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate gets a credit lot under a row-level lock. Must be called
// inside a UnitOfWork; the lock is held until the transaction commits.
func (r *CreditRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.CreditLot, error) {
	return r.getByID(ctx, id, true)
}

func (r *CreditRepository) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entities.CreditLot, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if forUpdate && db.Dialector.Name() == "postgres" {
		// sqlite has no SELECT FOR UPDATE; its single-writer transaction
		// lock gives the same guarantee in tests
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m models.CreditLot
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCreditEntity(&m), nil
}

// GetByAssessmentID gets every lot minted from one assessment
func (r *CreditRepository) GetByAssessmentID(ctx context.Context, assessmentID uuid.UUID) ([]*entities.CreditLot, error) {
	var ms []models.CreditLot
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("issuance_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toCreditEntities(ms), nil
}

// GetByProjectID gets every lot belonging to a project
func (r *CreditRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.CreditLot, error) {
	var ms []models.CreditLot
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("issuance_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toCreditEntities(ms), nil
}

type creditListingRow struct {
	models.CreditLot
	ProjectName string
	ProjectType string
	SellerID    uuid.UUID
	SellerName  string
}

// ListAvailable lists available lots joined with project and seller metadata,
// newest first
func (r *CreditRepository) ListAvailable(ctx context.Context, limit, offset int) ([]*entities.CreditListing, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.CreditLot{}).
		Where("status = ?", string(entities.CreditStatusAvailable)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = -1 // gorm: no LIMIT clause
	}

	var rows []creditListingRow
	if err := db.WithContext(ctx).Model(&models.CreditLot{}).
		Select("carbon_credits.*, projects.name AS project_name, projects.project_type AS project_type, users.id AS seller_id, users.username AS seller_name").
		Joins("JOIN projects ON projects.id = carbon_credits.project_id").
		Joins("JOIN users ON users.id = projects.user_id").
		Where("carbon_credits.status = ?", string(entities.CreditStatusAvailable)).
		Order("carbon_credits.issuance_date DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	listings := make([]*entities.CreditListing, 0, len(rows))
	for i := range rows {
		listings = append(listings, &entities.CreditListing{
			CreditLot:   *toCreditEntity(&rows[i].CreditLot),
			ProjectName: rows[i].ProjectName,
			ProjectType: entities.ProjectType(rows[i].ProjectType),
			SellerID:    rows[i].SellerID,
			SellerName:  rows[i].SellerName,
		})
	}
	return listings, int(total), nil
}

// UpdateStatus flips a lot's trading status
func (r *CreditRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CreditStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.CreditLot{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateAmountAndStatus rewrites a lot's quantity and status in one statement,
// used by the exchange when splitting a lot
func (r *CreditRepository) UpdateAmountAndStatus(ctx context.Context, id uuid.UUID, amount decimal.Decimal, status entities.CreditStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.CreditLot{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"credit_amount": amount.String(),
			"status":        string(status),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toCreditEntity(m *models.CreditLot) *entities.CreditLot {
	return &entities.CreditLot{
		ID:                      m.ID,
		ProjectID:               m.ProjectID,
		AssessmentID:            m.AssessmentID,
		CreditAmount:            decimalOrZero(m.CreditAmount),
		IssuanceDate:            m.IssuanceDate,
		ExpiryDate:              m.ExpiryDate,
		CertificateID:           m.CertificateID,
		Status:                  entities.CreditStatus(m.Status),
		PricePerCredit:          decimalOrZero(m.PricePerCredit),
		VerificationDocumentURL: null.StringFromPtr(m.VerificationDocumentURL),
	}
}

func toCreditEntities(ms []models.CreditLot) []*entities.CreditLot {
	lots := make([]*entities.CreditLot, 0, len(ms))
	for i := range ms {
		lots = append(lots, toCreditEntity(&ms[i]))
	}
	return lots
}

// MarkExpired flips lots past their expiry date to expired. Intended for a
// periodic maintenance job; returns the number of lots affected.
func (r *CreditRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.CreditLot{}).
		Where("status = ? AND expiry_date < ?", string(entities.CreditStatusAvailable), now).
		Update("status", string(entities.CreditStatusExpired))
	return result.RowsAffected, result.Error
}
