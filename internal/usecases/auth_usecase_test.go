package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/pkg/jwt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthUsecase_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAuthUsecase(env.users, env.uow, newTestJWTService())
	ctx := context.Background()

	input := &entities.RegisterUserInput{
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
		Password: "s3cretpass",
		UserType: "individual",
	}

	user, tokens, err := uc.Register(ctx, input)
	require.NoError(t, err)
	require.Equal(t, "wanjiku", user.Username)
	require.Equal(t, entities.UserTypeIndividual, user.UserType)
	require.Equal(t, entities.UserVerificationPending, user.VerificationStatus)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	require.NotEqual(t, "s3cretpass", user.PasswordHash)

	// duplicate email
	_, _, err = uc.Register(ctx, input)
	require.ErrorIs(t, err, domainerrors.ErrConstraintViolation)

	got, loginTokens, err := uc.Login(ctx, &entities.LoginInput{Email: "wanjiku@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, loginTokens.AccessToken)

	_, _, err = uc.Login(ctx, &entities.LoginInput{Email: "wanjiku@example.com", Password: "wrongpass"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, _, err = uc.Login(ctx, &entities.LoginInput{Email: "nobody@example.com", Password: "s3cretpass"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_GetMe(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAuthUsecase(env.users, env.uow, newTestJWTService())
	ctx := context.Background()

	user := env.seedUser(t, "owner")

	got, err := uc.GetMe(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)
}

func TestAuthUsecase_DeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAuthUsecase(env.users, env.uow, newTestJWTService())
	ctx := context.Background()

	user := env.seedUser(t, "owner")
	project := env.seedProject(t, user, entities.ProjectTypeForestry, entities.ProjectStatusRegistered)

	require.NoError(t, uc.DeleteAccount(ctx, user.ID))

	_, err := env.users.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = env.projects.GetByID(ctx, project.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
