package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := &models.User{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		UserType:           string(user.UserType),
		VerificationStatus: string(user.VerificationStatus),
		ProfileImgURL:      user.ProfileImgURL.Ptr(),
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user email or username taken: %w", domainerrors.ErrConstraintViolation)
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Delete removes a user and every row that depends on it. Transactions where
// the user appears as buyer against someone else's credits are removed too,
// matching FK cascade semantics. Callers wrap this in a UnitOfWork.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)

	var projectIDs []uuid.UUID
	if err := db.WithContext(ctx).Model(&models.Project{}).
		Where("user_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
		return err
	}

	for _, projectID := range projectIDs {
		if err := deleteProjectCascade(ctx, db, projectID); err != nil {
			return err
		}
	}

	if err := db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", id, id).
		Delete(&models.Transaction{}).Error; err != nil {
		return err
	}

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		UserType:           entities.UserType(m.UserType),
		VerificationStatus: entities.UserVerificationStatus(m.VerificationStatus),
		ProfileImgURL:      null.StringFromPtr(m.ProfileImgURL),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
