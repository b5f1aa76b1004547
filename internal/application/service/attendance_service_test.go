package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAttendance(t *testing.T) (*AttendanceService, *entity.User, *gorm.DB) {
	db := newTestDB(t)

	user := &entity.User{
		Username:     "kasir1",
		PasswordHash: "x",
		FullName:     "Siti Rahma",
		Role:         entity.RoleCashier,
		CardID:       "STF-001",
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)

	svc := NewAttendanceService(
		infraRepo.NewAttendanceRepository(db),
		infraRepo.NewUserRepository(db),
	)
	return svc, user, db
}

func TestCheckInAndOut(t *testing.T) {
	svc, user, _ := seedAttendance(t)
	ctx := context.Background()

	att, err := svc.CheckIn(ctx, user.ID, "shift pagi")
	require.NoError(t, err)
	require.Equal(t, user.ID, att.UserID)
	require.Equal(t, "Siti Rahma", att.UserName)
	require.Nil(t, att.CheckOut)
	require.Equal(t, "shift pagi", att.Note)

	// Date is truncated to midnight
	require.Equal(t, 0, att.Date.Hour())
	require.Equal(t, 0, att.Date.Minute())

	closed, err := svc.CheckOut(ctx, user.ID, "")
	require.NoError(t, err)
	require.Equal(t, att.ID, closed.ID)
	require.NotNil(t, closed.CheckOut)
	require.Equal(t, "shift pagi", closed.Note, "empty note keeps the check-in note")
}

func TestCheckInTwiceConflicts(t *testing.T) {
	svc, user, _ := seedAttendance(t)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, user.ID, "")
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, user.ID, "")
	require.Error(t, err)
	require.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	require.Equal(t, "Already checked in today", apperror.GetAppError(err).Message)
}

func TestCheckOutWithoutOpenRecord(t *testing.T) {
	svc, user, _ := seedAttendance(t)

	_, err := svc.CheckOut(context.Background(), user.ID, "")
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCheckInAgainAfterCheckOut(t *testing.T) {
	svc, user, _ := seedAttendance(t)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, user.ID, "")
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, user.ID, "")
	require.NoError(t, err)

	// A closed record no longer blocks a new check-in the same day
	second, err := svc.CheckIn(ctx, user.ID, "shift sore")
	require.NoError(t, err)
	require.Nil(t, second.CheckOut)
}

func TestCheckInUnknownUser(t *testing.T) {
	svc, _, _ := seedAttendance(t)

	_, err := svc.CheckIn(context.Background(), uuid.New(), "")
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestListAttendanceFilterByUser(t *testing.T) {
	svc, user, db := seedAttendance(t)
	ctx := context.Background()

	other := &entity.User{
		Username: "kasir2", PasswordHash: "x", FullName: "Andi", Role: entity.RoleCashier,
		CardID: "STF-002", Active: true,
	}
	require.NoError(t, db.Create(other).Error)

	_, err := svc.CheckIn(ctx, user.ID, "")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, other.ID, "")
	require.NoError(t, err)

	result, err := svc.ListAttendance(ctx, &repository.AttendanceFilterParams{
		Pagination: pagination.DefaultPagination(),
		UserID:     &user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Pagination.Total)
	require.Equal(t, user.ID, result.Items[0].UserID)

	today := time.Now()
	result, err = svc.ListAttendance(ctx, &repository.AttendanceFilterParams{
		Pagination: pagination.DefaultPagination(),
		Date:       &today,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Pagination.Total)
}
