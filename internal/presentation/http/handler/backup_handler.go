package handler

import (
	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BackupHandler handles export, import and reset HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export streams the whole store as one JSON document
func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="kasirku-backup.json"`)
	c.JSON(200, doc)
}

// Import restores the collections present in the uploaded document
func (h *BackupHandler) Import(c *gin.Context) {
	var doc entity.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "Invalid backup document")
		return
	}

	if err := h.backupService.Import(c.Request.Context(), &doc); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup imported successfully", nil)
}

// Reset clears the operational data while keeping staff and settings
func (h *BackupHandler) Reset(c *gin.Context) {
	if err := h.backupService.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store data reset successfully", nil)
}
