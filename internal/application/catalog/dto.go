package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/landryjoias/crm/internal/domain/catalog"
)

// ProductRequest represents a request to create or update a product
type ProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Description   string          `json:"description" binding:"max=2000"`
	TypeCode      int             `json:"type_code" binding:"min=0"`
	Size          float64         `json:"size"`
	UnitValue     decimal.Decimal `json:"unit_value" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"min=0"`
	Material      string          `json:"material" binding:"required,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TypeCode      int             `json:"type_code"`
	Size          float64         `json:"size"`
	UnitValue     decimal.Decimal `json:"unit_value"`
	StockQuantity int             `json:"stock_quantity"`
	Material      string          `json:"material"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		TypeCode:      product.TypeCode,
		Size:          product.Size,
		UnitValue:     product.UnitValue,
		StockQuantity: product.StockQuantity,
		Material:      product.Material,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
