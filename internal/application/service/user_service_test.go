package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	db := newTestDB(t)
	return NewUserService(infraRepo.NewUserRepository(db))
}

func TestCreateUser(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "kasir1",
		Password: "rahasia1",
		FullName: "Siti Rahma",
		Role:     entity.RoleCashier,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.CardID, "staff card ID is generated")
	require.True(t, user.Active)
	require.NotEqual(t, "rahasia1", user.PasswordHash)
	require.True(t, utils.CheckPasswordHash("rahasia1", user.PasswordHash))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "kasir1", Password: "rahasia1", FullName: "Siti", Role: entity.RoleCashier,
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &CreateUserInput{
		Username: "kasir1", Password: "rahasia2", FullName: "Andi", Role: entity.RoleCashier,
	})
	require.Error(t, err)
	require.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "kasir1", Password: "rahasia1", FullName: "Siti", Role: "owner",
	})
	require.Error(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestUpdateUserRoleAndDeactivate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "kasir1", Password: "rahasia1", FullName: "Siti", Role: entity.RoleCashier,
	})
	require.NoError(t, err)

	role := entity.RoleManager
	active := false
	updated, err := svc.UpdateUser(ctx, &UpdateUserInput{
		ID:     user.ID,
		Role:   &role,
		Active: &active,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleManager, updated.Role)
	require.False(t, updated.Active)
}

func TestStaffIDCard(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "kasir1", Password: "rahasia1", FullName: "Siti Rahma", Role: entity.RoleCashier,
	})
	require.NoError(t, err)

	card, err := svc.IDCard(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.CardID, card.CardID)
	require.Equal(t, "Siti Rahma", card.FullName)
	require.Equal(t, entity.RoleCashier, card.Role)
}

func TestDeleteUserBlocksSelfDelete(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "admin", Password: "rahasia1", FullName: "Admin", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, user.ID, user.ID)
	require.Error(t, err)
	require.Equal(t, "Cannot delete your own account", apperror.GetAppError(err).Message)

	// Still present
	_, err = svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
}

func TestDeleteUserByAnotherAdmin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "admin", Password: "rahasia1", FullName: "Admin", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	cashier, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "kasir1", Password: "rahasia1", FullName: "Siti", Role: entity.RoleCashier,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, cashier.ID, admin.ID))

	_, err = svc.GetUser(ctx, cashier.ID)
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
