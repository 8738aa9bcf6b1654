package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/landryjoias/crm/internal/application/sales"
	"github.com/landryjoias/crm/internal/interfaces/http/dto"
)

// OpportunityHandler handles sales-funnel opportunity API endpoints
type OpportunityHandler struct {
	BaseHandler
	opportunityService *salesapp.OpportunityService
}

// NewOpportunityHandler creates a new OpportunityHandler
func NewOpportunityHandler(opportunityService *salesapp.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
	}
}

// Create godoc
// @Summary      Create a new opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        request body salesapp.OpportunityRequest true "Opportunity creation request"
// @Success      201 {object} dto.Response{data=salesapp.OpportunityResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /opportunities [post]
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req salesapp.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	opportunity, err := h.opportunityService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, opportunity)
}

// GetByID godoc
// @Summary      Get opportunity by ID
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID" format(uuid)
// @Success      200 {object} dto.Response{data=salesapp.OpportunityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid opportunity ID format")
		return
	}

	opportunity, err := h.opportunityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, opportunity)
}

// List godoc
// @Summary      List opportunities
// @Tags         opportunities
// @Produce      json
// @Param        search query string false "Search term (name)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]salesapp.OpportunityResponse}
// @Security     BearerAuth
// @Router       /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	page, err := h.opportunityService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        id path string true "Opportunity ID" format(uuid)
// @Param        request body salesapp.OpportunityRequest true "Opportunity update request"
// @Success      200 {object} dto.Response{data=salesapp.OpportunityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid opportunity ID format")
		return
	}

	var req salesapp.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	opportunity, err := h.opportunityService.Update(c.Request.Context(), getActor(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, opportunity)
}

// Delete godoc
// @Summary      Delete an opportunity
// @Description  Remove an opportunity. Fails with 409 once it has been converted into an order.
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid opportunity ID format")
		return
	}

	if err := h.opportunityService.Delete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
