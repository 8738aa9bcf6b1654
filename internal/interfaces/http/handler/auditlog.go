package handler

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/interfaces/http/dto"
)

// AuditLogHandler handles the audit trail API endpoints. Besides the
// automatic entries the services record, the trail can be managed
// directly for manual annotations.
type AuditLogHandler struct {
	BaseHandler
	entryService *auditapp.EntryService
}

// NewAuditLogHandler creates a new AuditLogHandler
func NewAuditLogHandler(entryService *auditapp.EntryService) *AuditLogHandler {
	return &AuditLogHandler{
		entryService: entryService,
	}
}

// Create godoc
// @Summary      Create an audit entry
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        request body auditapp.CreateEntryRequest true "Entry creation request"
// @Success      201 {object} dto.Response{data=auditapp.EntryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs [post]
func (h *AuditLogHandler) Create(c *gin.Context) {
	var req auditapp.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entry, err := h.entryService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID godoc
// @Summary      Get audit entry by ID
// @Tags         logs
// @Produce      json
// @Param        id path string true "Entry ID" format(uuid)
// @Success      200 {object} dto.Response{data=auditapp.EntryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs/{id} [get]
func (h *AuditLogHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	entry, err := h.entryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// List godoc
// @Summary      List audit entries
// @Tags         logs
// @Produce      json
// @Param        search query string false "Search term (title, subject)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]auditapp.EntryResponse}
// @Security     BearerAuth
// @Router       /logs [get]
func (h *AuditLogHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	page, err := h.entryService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update an audit entry
// @Description  Edit an entry's descriptive fields. The occurrence timestamp stays fixed.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID" format(uuid)
// @Param        request body auditapp.UpdateEntryRequest true "Entry update request"
// @Success      200 {object} dto.Response{data=auditapp.EntryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs/{id} [put]
func (h *AuditLogHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	var req auditapp.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entry, err := h.entryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete godoc
// @Summary      Delete an audit entry
// @Tags         logs
// @Produce      json
// @Param        id path string true "Entry ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs/{id} [delete]
func (h *AuditLogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	if err := h.entryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
