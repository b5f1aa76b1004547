package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCashbookService(t *testing.T) (*CashbookService, *gorm.DB) {
	db := newTestDB(t)
	return NewCashbookService(infraRepo.NewCashEntryRepository(db)), db
}

func TestCreateCashEntry(t *testing.T) {
	svc, _ := newCashbookService(t)
	ctx := context.Background()

	entry, err := svc.CreateCashEntry(ctx, &CreateCashEntryInput{
		Type:     enum.CashEntryTypeOut,
		Category: "Listrik",
		Amount:   d("350000"),
		Note:     "Tagihan bulan ini",
		UserID:   uuid.New(),
		UserName: "Dewi",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, entry.ID)
	require.Equal(t, enum.CashEntryTypeOut, entry.Type)
	require.True(t, entry.Amount.Equal(d("350000")))
}

func TestCreateCashEntryRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newCashbookService(t)
	ctx := context.Background()

	for _, amount := range []string{"0", "-5000"} {
		_, err := svc.CreateCashEntry(ctx, &CreateCashEntryInput{
			Type:   enum.CashEntryTypeIn,
			Amount: d(amount),
			UserID: uuid.New(),
		})
		require.Error(t, err, "amount %s", amount)
		require.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	}
}

func TestDeleteCashEntryStopsCounting(t *testing.T) {
	svc, db := newCashbookService(t)
	ctx := context.Background()
	entryRepo := infraRepo.NewCashEntryRepository(db)

	in, err := svc.CreateCashEntry(ctx, &CreateCashEntryInput{
		Type: enum.CashEntryTypeIn, Amount: d("500000"), UserID: uuid.New(),
	})
	require.NoError(t, err)
	out, err := svc.CreateCashEntry(ctx, &CreateCashEntryInput{
		Type: enum.CashEntryTypeOut, Amount: d("200000"), UserID: uuid.New(),
	})
	require.NoError(t, err)

	entries, err := entryRepo.ListAll(ctx)
	require.NoError(t, err)
	require.True(t, NetBalance(nil, entries).Equal(d("300000")))

	require.NoError(t, svc.DeleteCashEntry(ctx, out.ID))

	entries, err = entryRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, in.ID, entries[0].ID)
	require.True(t, NetBalance(nil, entries).Equal(d("500000")))
}

func TestDeleteCashEntryNotFound(t *testing.T) {
	svc, _ := newCashbookService(t)

	err := svc.DeleteCashEntry(context.Background(), uuid.New())
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCashbookSummary(t *testing.T) {
	svc, _ := newCashbookService(t)
	ctx := context.Background()

	_, err := svc.CreateCashEntry(ctx, &CreateCashEntryInput{
		Type: enum.CashEntryTypeIn, Amount: d("500000"), UserID: uuid.New(),
	})
	require.NoError(t, err)
	_, err = svc.CreateCashEntry(ctx, &CreateCashEntryInput{
		Type: enum.CashEntryTypeIn, Amount: d("200000"), UserID: uuid.New(),
	})
	require.NoError(t, err)
	_, err = svc.CreateCashEntry(ctx, &CreateCashEntryInput{
		Type: enum.CashEntryTypeOut, Amount: d("100000"), UserID: uuid.New(),
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, nil, nil)
	require.NoError(t, err)
	require.True(t, summary.TotalIn.Equal(d("700000")))
	require.True(t, summary.TotalOut.Equal(d("100000")))
	require.True(t, summary.Net.Equal(d("600000")))
	require.Equal(t, 3, summary.EntryCount)

	// A window in the past catches nothing
	past := time.Now().AddDate(0, 0, -2)
	pastEnd := time.Now().AddDate(0, 0, -1)
	summary, err = svc.Summary(ctx, &past, &pastEnd)
	require.NoError(t, err)
	require.Equal(t, 0, summary.EntryCount)
	require.True(t, summary.Net.IsZero())
}

func TestListCashEntriesFilterByType(t *testing.T) {
	svc, _ := newCashbookService(t)
	ctx := context.Background()

	for _, typ := range []enum.CashEntryType{enum.CashEntryTypeIn, enum.CashEntryTypeOut, enum.CashEntryTypeOut} {
		_, err := svc.CreateCashEntry(ctx, &CreateCashEntryInput{
			Type: typ, Amount: d("10000"), UserID: uuid.New(),
		})
		require.NoError(t, err)
	}

	typeOut := enum.CashEntryTypeOut
	result, err := svc.ListCashEntries(ctx, &repository.CashEntryFilterParams{
		Pagination: pagination.DefaultPagination(),
		Type:       &typeOut,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Pagination.Total)
}
