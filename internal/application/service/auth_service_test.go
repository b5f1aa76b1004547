package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAuth(t *testing.T) (*AuthService, *entity.User, *gorm.DB) {
	db := newTestDB(t)

	hash, err := utils.HashPassword("rahasia1")
	require.NoError(t, err)

	user := &entity.User{
		Username:     "kasir1",
		PasswordHash: hash,
		FullName:     "Siti Rahma",
		Role:         entity.RoleCashier,
		CardID:       "STF-001",
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(infraRepo.NewUserRepository(db), jwtManager)
	return svc, user, db
}

func TestLogin(t *testing.T) {
	svc, user, _ := seedAuth(t)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "kasir1",
		Password: "rahasia1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, user.ID, result.User.ID)

	claims, err := utils.NewJWTManager("test-secret", time.Hour).ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, entity.RoleCashier, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := seedAuth(t)

	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "kasir1",
		Password: "salah",
	})
	require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := seedAuth(t)

	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "tidak-ada",
		Password: "rahasia1",
	})
	require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, user, db := seedAuth(t)

	require.NoError(t, db.Model(user).Update("active", false).Error)

	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "kasir1",
		Password: "rahasia1",
	})
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperror.GetAppError(err).Code)
}

func TestChangePassword(t *testing.T) {
	svc, user, _ := seedAuth(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "rahasia1",
		NewPassword:     "rahasia2",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Username: "kasir1", Password: "rahasia1"})
	require.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	result, err := svc.Login(ctx, &LoginInput{Username: "kasir1", Password: "rahasia2"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, user, _ := seedAuth(t)

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "salah",
		NewPassword:     "rahasia2",
	})
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestChangePasswordTooShort(t *testing.T) {
	svc, user, _ := seedAuth(t)

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "rahasia1",
		NewPassword:     "abc",
	})
	require.Error(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}
