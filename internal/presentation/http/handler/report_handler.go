package handler

import (
	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles financial reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ProfitLoss returns the P&L statement for the requested period
// (daily, weekly or monthly)
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	periodStr := c.DefaultQuery("period", "daily")
	period, err := enum.ParseReportPeriod(periodStr)
	if err != nil {
		response.BadRequest(c, "Unknown report period: "+periodStr)
		return
	}

	report, err := h.reportService.ProfitLoss(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// Stock returns the stock health report: expired, expiring soon and low
// stock sets
func (h *ReportHandler) Stock(c *gin.Context) {
	report, err := h.reportService.StockReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock report generated successfully", report)
}
