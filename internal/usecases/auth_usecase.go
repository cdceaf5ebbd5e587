package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/pkg/crypto"
	"github.com/LancemDev/greenconnect-test/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	uow        repositories.UnitOfWork
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, uow repositories.UnitOfWork, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		uow:        uow,
		jwtService: jwtService,
	}
}

// Register registers a new user
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterUserInput) (*entities.User, *jwt.TokenPair, error) {
	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	userType := entities.UserType(input.UserType)
	if userType == "" {
		userType = entities.UserTypeIndividual
	}

	user := &entities.User{
		Email:              input.Email,
		Username:           input.Username,
		PasswordHash:       passwordHash,
		UserType:           userType,
		VerificationStatus: entities.UserVerificationPending,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrConstraintViolation) {
			return nil, nil, domainerrors.Conflict("email already registered")
		}
		return nil, nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Login authenticates a user and returns a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// GetMe returns the authenticated user's profile
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// DeleteAccount removes a user together with their projects, assessments,
// credits and transactions. The cascade runs in a single transaction.
func (u *AuthUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		return u.userRepo.Delete(ctx, userID)
	})
}
