package handler

import (
	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/request"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CashbookHandler handles manual cash ledger HTTP requests
type CashbookHandler struct {
	cashbookService *service.CashbookService
}

// NewCashbookHandler creates a new cashbook handler
func NewCashbookHandler(cashbookService *service.CashbookService) *CashbookHandler {
	return &CashbookHandler{cashbookService: cashbookService}
}

// Create appends a manual movement to the ledger
func (h *CashbookHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	entryType, err := enum.ParseCashEntryType(req.Type)
	if err != nil {
		response.BadRequest(c, "Unknown entry type: "+req.Type)
		return
	}

	entry, err := h.cashbookService.CreateCashEntry(c.Request.Context(), &service.CreateCashEntryInput{
		Type:     entryType,
		Category: req.Category,
		Amount:   req.Amount.Decimal,
		Note:     req.Note,
		UserID:   *userID,
		UserName: GetFullName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cash entry created successfully", entry)
}

// Get retrieves a ledger entry by ID
func (h *CashbookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cash entry ID")
		return
	}

	entry, err := h.cashbookService.GetCashEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash entry retrieved successfully", entry)
}

// List handles listing ledger entries with filtering
func (h *CashbookHandler) List(c *gin.Context) {
	params := &repository.CashEntryFilterParams{
		Pagination: GetPagination(c),
		Category:   c.Query("category"),
		StartDate:  ParseDateQuery(c, "start_date"),
		EndDate:    ParseDateQuery(c, "end_date"),
	}

	if typeStr := c.Query("type"); typeStr != "" {
		entryType, err := enum.ParseCashEntryType(typeStr)
		if err != nil {
			response.BadRequest(c, "Unknown entry type: "+typeStr)
			return
		}
		params.Type = &entryType
	}

	result, err := h.cashbookService.ListCashEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cash entries retrieved successfully", result)
}

// Summary totals the ledger IN/OUT for an optional date window
func (h *CashbookHandler) Summary(c *gin.Context) {
	start := ParseDateQuery(c, "start_date")
	end := ParseDateQuery(c, "end_date")

	summary, err := h.cashbookService.Summary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashbook summary retrieved successfully", summary)
}

// Delete removes a ledger entry
func (h *CashbookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cash entry ID")
		return
	}

	if err := h.cashbookService.DeleteCashEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash entry deleted successfully", nil)
}
