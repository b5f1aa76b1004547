package handler

import (
	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/request"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/response"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles checkout and transaction history HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Preview computes the totals for a cart without committing anything
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req request.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	items, err := request.ParseItems(req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	totals, err := h.checkoutService.Preview(c.Request.Context(), items, req.GlobalDiscount.Decimal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed successfully", totals)
}

// Checkout confirms a sale: computes totals, validates the payment and
// commits the transaction atomically
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input, err := req.ToInput(*userID, GetFullName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	trx, err := h.checkoutService.Checkout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction completed successfully", trx)
}

// Get retrieves a transaction by ID
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	trx, err := h.checkoutService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", trx)
}

// List handles listing transactions with filtering
func (h *CheckoutHandler) List(c *gin.Context) {
	params := &repository.TransactionFilterParams{
		Pagination: GetPagination(c),
		Search:     c.Query("search"),
		StartDate:  ParseDateQuery(c, "start_date"),
		EndDate:    ParseDateQuery(c, "end_date"),
	}

	if methodStr := c.Query("payment_method"); methodStr != "" {
		method, err := enum.ParsePaymentMethod(methodStr)
		if err != nil {
			response.BadRequest(c, "Unknown payment method: "+methodStr)
			return
		}
		params.PaymentMethod = &method
	}

	if customerStr := c.Query("customer_id"); customerStr != "" {
		customerID, err := uuid.Parse(customerStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}

	transactions, total, err := h.checkoutService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	result := pagination.NewPaginatedResult[entity.Transaction](transactions, pag)
	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Delete removes a transaction from the history. Reports recompute on the
// next request, so the figures simply stop counting it.
func (h *CheckoutHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.checkoutService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction deleted successfully", nil)
}
