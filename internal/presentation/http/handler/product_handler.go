package handler

import (
	"strconv"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/request"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func parseDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	arrival, ok := parseDate(req.ArrivalDate)
	if !ok {
		response.BadRequest(c, "Invalid arrival_date, expected YYYY-MM-DD")
		return
	}
	expiry, ok := parseDate(req.ExpiryDate)
	if !ok {
		response.BadRequest(c, "Invalid expiry_date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateProductInput{
		SKU:                    req.SKU,
		Name:                   req.Name,
		Category:               req.Category,
		CostPrice:              req.CostPrice.Decimal,
		Price:                  req.Price.Decimal,
		Stock:                  int(req.Stock),
		DefaultDiscountPercent: int(req.DefaultDiscountPercent),
		ExpiryDate:             expiry,
	}
	if arrival != nil {
		input.ArrivalDate = *arrival
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles retrieving a product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// GetBySKU handles barcode lookups at the terminal
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	product, err := h.productService.GetProductBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// List handles listing products with filtering
func (h *ProductHandler) List(c *gin.Context) {
	params := &repository.ProductFilterParams{
		Pagination: GetPagination(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if lowStock := c.Query("low_stock_at"); lowStock != "" {
		if level, err := strconv.Atoi(lowStock); err == nil && level > 0 {
			params.LowStockAt = level
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.UpdateProductInput{
		ID:              id,
		SKU:             req.SKU,
		Name:            req.Name,
		Category:        req.Category,
		ClearExpiryDate: req.ClearExpiryDate,
	}
	if req.CostPrice != nil {
		cost := req.CostPrice.Decimal
		input.CostPrice = &cost
	}
	if req.Price != nil {
		price := req.Price.Decimal
		input.Price = &price
	}
	if req.Stock != nil {
		stock := int(*req.Stock)
		input.Stock = &stock
	}
	if req.DefaultDiscountPercent != nil {
		pct := int(*req.DefaultDiscountPercent)
		input.DefaultDiscountPercent = &pct
	}
	if req.ArrivalDate != nil {
		arrival, ok := parseDate(*req.ArrivalDate)
		if !ok {
			response.BadRequest(c, "Invalid arrival_date, expected YYYY-MM-DD")
			return
		}
		input.ArrivalDate = arrival
	}
	if req.ExpiryDate != nil {
		expiry, ok := parseDate(*req.ExpiryDate)
		if !ok {
			response.BadRequest(c, "Invalid expiry_date, expected YYYY-MM-DD")
			return
		}
		input.ExpiryDate = expiry
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// AdjustStock handles manual restocks and corrections
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), id, int(req.Delta))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", product)
}
