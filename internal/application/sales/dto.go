package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/landryjoias/crm/internal/domain/sales"
)

// =============================================================================
// Opportunity DTOs
// =============================================================================

// OpportunityRequest represents a request to create or update an opportunity
type OpportunityRequest struct {
	Name               string          `json:"name" binding:"required,min=1,max=200"`
	EstimatedValue     decimal.Decimal `json:"estimated_value" binding:"required"`
	Stage              string          `json:"stage" binding:"required,funnelstage"`
	EstimatedCloseDate time.Time       `json:"estimated_close_date" binding:"required"`
	ClientID           uuid.UUID       `json:"client_id" binding:"required"`
}

// OpportunityResponse represents an opportunity in API responses
type OpportunityResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	EstimatedValue     decimal.Decimal `json:"estimated_value"`
	Stage              string          `json:"stage"`
	EstimatedCloseDate time.Time       `json:"estimated_close_date"`
	ClientID           uuid.UUID       `json:"client_id"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToOpportunityResponse converts a domain opportunity to its response form
func ToOpportunityResponse(opportunity *sales.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:                 opportunity.ID,
		Name:               opportunity.Name,
		EstimatedValue:     opportunity.EstimatedValue,
		Stage:              string(opportunity.Stage),
		EstimatedCloseDate: opportunity.EstimatedCloseDate,
		ClientID:           opportunity.ClientID,
		CreatedAt:          opportunity.CreatedAt,
		UpdatedAt:          opportunity.UpdatedAt,
	}
}

// =============================================================================
// Order DTOs
// =============================================================================

// SubmitOrderItemRequest is one requested line of a new order
type SubmitOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Gemstone  string    `json:"gemstone" binding:"max=100"`
	Size      string    `json:"size" binding:"max=100"`
}

// SubmitOrderRequest represents a request to submit a new order
type SubmitOrderRequest struct {
	OrderDate     time.Time                `json:"order_date" binding:"required"`
	TotalValue    decimal.Decimal          `json:"total_value" binding:"required"`
	Status        string                   `json:"status" binding:"required,orderstatus"`
	OpportunityID *uuid.UUID               `json:"opportunity_id"`
	Items         []SubmitOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest represents a header-only order edit
type UpdateOrderRequest struct {
	OrderDate  time.Time       `json:"order_date" binding:"required"`
	TotalValue decimal.Decimal `json:"total_value" binding:"required"`
	Status     string          `json:"status" binding:"required,orderstatus"`
}

// AddItemRequest represents a request to append one line via the
// database procedure
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	OrderID    uuid.UUID       `json:"order_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitValue  decimal.Decimal `json:"unit_value"`
	Gemstone   string          `json:"gemstone,omitempty"`
	Size       string          `json:"size"`
	CustomSize string          `json:"custom_size,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderDate     time.Time           `json:"order_date"`
	TotalValue    decimal.Decimal     `json:"total_value"`
	Status        string              `json:"status"`
	OpportunityID *uuid.UUID          `json:"opportunity_id,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain order to its response form
func ToOrderResponse(order *sales.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitValue:  item.UnitValue,
			Gemstone:   item.Gemstone,
			Size:       string(item.Size),
			CustomSize: item.CustomSize,
		})
	}

	return OrderResponse{
		ID:            order.ID,
		OrderDate:     order.OrderDate,
		TotalValue:    order.TotalValue,
		Status:        string(order.Status),
		OpportunityID: order.OpportunityID,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
