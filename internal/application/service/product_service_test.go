package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"

	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) *ProductService {
	db := newTestDB(t)
	return NewProductService(infraRepo.NewProductRepository(db))
}

func TestCreateProductGeneratesSKU(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:      "Teh Botol",
		Category:  "Minuman",
		CostPrice: d("2500"),
		Price:     d("4000"),
		Stock:     24,
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.SKU)
	require.NotEqual(t, uuid.Nil, product.ID)
	require.False(t, product.ArrivalDate.IsZero())
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &CreateProductInput{
		SKU: "SKU-DUP", Name: "Teh Botol", Price: d("4000"), CostPrice: d("2500"),
	})
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, &CreateProductInput{
		SKU: "SKU-DUP", Name: "Teh Kotak", Price: d("5000"), CostPrice: d("3000"),
	})
	require.Error(t, err)
	require.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:      "   ",
		CostPrice: d("-1"),
		Price:     d("-1"),
		Stock:     -3,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 4)
}

func TestUpdateProductPartialFields(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name: "Teh Botol", Category: "Minuman", CostPrice: d("2500"), Price: d("4000"), Stock: 24,
	})
	require.NoError(t, err)

	newPrice := d("4500")
	updated, err := svc.UpdateProduct(ctx, &UpdateProductInput{
		ID:    product.ID,
		Price: &newPrice,
	})
	require.NoError(t, err)
	require.True(t, updated.Price.Equal(d("4500")))
	require.Equal(t, "Teh Botol", updated.Name, "unset fields stay as they were")
	require.Equal(t, 24, updated.Stock)
}

func TestUpdateProductClearsExpiryDate(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	expiry := time.Now().AddDate(0, 6, 0)
	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name: "Susu UHT", CostPrice: d("10000"), Price: d("15000"), Stock: 10, ExpiryDate: &expiry,
	})
	require.NoError(t, err)
	require.NotNil(t, product.ExpiryDate)

	updated, err := svc.UpdateProduct(ctx, &UpdateProductInput{
		ID:              product.ID,
		ClearExpiryDate: true,
	})
	require.NoError(t, err)
	require.Nil(t, updated.ExpiryDate)
}

func TestAdjustStock(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name: "Indomie Goreng", CostPrice: d("2000"), Price: d("3500"), Stock: 5,
	})
	require.NoError(t, err)

	restocked, err := svc.AdjustStock(ctx, product.ID, 20)
	require.NoError(t, err)
	require.Equal(t, 25, restocked.Stock)

	corrected, err := svc.AdjustStock(ctx, product.ID, -25)
	require.NoError(t, err)
	require.Equal(t, 0, corrected.Stock)
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name: "Indomie Goreng", CostPrice: d("2000"), Price: d("3500"), Stock: 5,
	})
	require.NoError(t, err)

	_, err = svc.AdjustStock(ctx, product.ID, -6)
	require.Error(t, err)
	require.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	current, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 5, current.Stock)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestListProductsSearchAndLowStock(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	for _, p := range []CreateProductInput{
		{Name: "Kopi Susu", Category: "Minuman", CostPrice: d("3000"), Price: d("8000"), Stock: 2},
		{Name: "Kopi Hitam", Category: "Minuman", CostPrice: d("2000"), Price: d("6000"), Stock: 30},
		{Name: "Roti Bakar", Category: "Makanan", CostPrice: d("5000"), Price: d("12000"), Stock: 1},
	} {
		input := p
		_, err := svc.CreateProduct(ctx, &input)
		require.NoError(t, err)
	}

	result, err := svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     "kopi",
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Pagination.Total)

	result, err = svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: pagination.DefaultPagination(),
		LowStockAt: 5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Pagination.Total)
}
