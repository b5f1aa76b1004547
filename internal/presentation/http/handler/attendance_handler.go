package handler

import (
	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/request"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles staff attendance HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn opens a work record for the authenticated user
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AttendanceNoteRequest
	_ = c.ShouldBindJSON(&req)

	att, err := h.attendanceService.CheckIn(c.Request.Context(), *userID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checked in successfully", att)
}

// CheckOut closes the authenticated user's open record for today
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AttendanceNoteRequest
	_ = c.ShouldBindJSON(&req)

	att, err := h.attendanceService.CheckOut(c.Request.Context(), *userID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checked out successfully", att)
}

// List handles listing attendance records with filtering
func (h *AttendanceHandler) List(c *gin.Context) {
	params := &repository.AttendanceFilterParams{
		Pagination: GetPagination(c),
		Date:       ParseDateQuery(c, "date"),
	}

	if userStr := c.Query("user_id"); userStr != "" {
		userID, err := uuid.Parse(userStr)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		params.UserID = &userID
	}

	result, err := h.attendanceService.ListAttendance(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Attendance records retrieved successfully", result)
}
