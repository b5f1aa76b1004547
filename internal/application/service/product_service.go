package service

import (
	"context"
	"strings"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	SKU                    string
	Name                   string
	Category               string
	CostPrice              decimal.Decimal
	Price                  decimal.Decimal
	Stock                  int
	DefaultDiscountPercent int
	ArrivalDate            time.Time
	ExpiryDate             *time.Time
}

func validateProductInput(name string, costPrice, price decimal.Decimal, stock, discountPercent int) *apperror.AppError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if costPrice.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cost_price", Message: "Cost price must not be negative"})
	}
	if price.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Stock must not be negative"})
	}
	if discountPercent < 0 || discountPercent > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "default_discount_percent", Message: "Discount percent must be between 0 and 100"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateProduct creates a new catalog item. The SKU is generated when not
// provided and must be unique either way.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if appErr := validateProductInput(input.Name, input.CostPrice, input.Price, input.Stock, input.DefaultDiscountPercent); appErr != nil {
		return nil, appErr
	}

	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		sku = utils.GenerateSKU()
	}

	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	arrival := input.ArrivalDate
	if arrival.IsZero() {
		arrival = time.Now()
	}

	product := &entity.Product{
		SKU:                    sku,
		Name:                   strings.TrimSpace(input.Name),
		Category:               strings.TrimSpace(input.Category),
		CostPrice:              input.CostPrice,
		Price:                  input.Price,
		Stock:                  input.Stock,
		DefaultDiscountPercent: input.DefaultDiscountPercent,
		ArrivalDate:            arrival,
		ExpiryDate:             input.ExpiryDate,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductBySKU retrieves a product by its SKU, for barcode scanning
func (s *ProductService) GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	ID                     uuid.UUID
	SKU                    *string
	Name                   *string
	Category               *string
	CostPrice              *decimal.Decimal
	Price                  *decimal.Decimal
	Stock                  *int
	DefaultDiscountPercent *int
	ArrivalDate            *time.Time
	ExpiryDate             *time.Time
	ClearExpiryDate        bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.SKU != nil && *input.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Product SKU already exists")
		}
		product.SKU = *input.SKU
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.DefaultDiscountPercent != nil {
		product.DefaultDiscountPercent = *input.DefaultDiscountPercent
	}
	if input.ArrivalDate != nil {
		product.ArrivalDate = *input.ArrivalDate
	}
	if input.ClearExpiryDate {
		product.ExpiryDate = nil
	} else if input.ExpiryDate != nil {
		product.ExpiryDate = input.ExpiryDate
	}

	if appErr := validateProductInput(product.Name, product.CostPrice, product.Price, product.Stock, product.DefaultDiscountPercent); appErr != nil {
		return nil, appErr
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product. Past transactions keep their snapshots,
// so the history stays intact.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// AdjustStock adds delta to a product's stock, for restocking and manual
// corrections. A negative delta that would drive stock below zero is rejected.
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	ok, err := s.productRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflictError("Stock adjustment would make stock negative")
	}

	return s.productRepo.GetByID(ctx, id)
}
