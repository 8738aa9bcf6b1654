package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDENTE"
	StatusConfirmed  OrderStatus = "CONFIRMADO"
	StatusProduction OrderStatus = "PRODUCAO"
	StatusPaid       OrderStatus = "PAGO"
	StatusShipped    OrderStatus = "ENVIADO"
	StatusDelivered  OrderStatus = "ENTREGUE"
	StatusCompleted  OrderStatus = "CONCLUIDO"
	StatusCancelled  OrderStatus = "CANCELADO"
)

// Valid reports whether the status is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProduction, StatusPaid,
		StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is the order header. It owns its items: items are created with
// the order and removed before the order itself is removed.
type Order struct {
	shared.BaseEntity
	OrderDate     time.Time       `gorm:"type:date;not null" json:"order_date"`
	TotalValue    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_value"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`
	OpportunityID *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"opportunity_id,omitempty"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line on an order. Its identity is the
// (order, product) pair, so a product appears at most once per order.
type OrderItem struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey" json:"order_id"`
	ProductID  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"product_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitValue  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_value"`
	Gemstone   string          `gorm:"type:varchar(100)" json:"gemstone,omitempty"`
	Size       ItemSize        `gorm:"type:varchar(20);not null" json:"size"`
	CustomSize string          `gorm:"type:varchar(100)" json:"custom_size,omitempty"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrder creates a new order header
func NewOrder(orderDate time.Time, totalValue decimal.Decimal, status OrderStatus) (*Order, error) {
	if !status.Valid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+string(status))
	}
	if totalValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Total value cannot be negative")
	}

	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		OrderDate:  orderDate,
		TotalValue: totalValue,
		Status:     status,
	}, nil
}

// LinkOpportunity ties the order to its originating opportunity
func (o *Order) LinkOpportunity(opportunityID uuid.UUID) {
	o.OpportunityID = &opportunityID
}

// AddItem appends a line for the given product, normalizing the
// free-text size against the catalog. Returns an error for a
// non-positive quantity or a product that is already on the order.
func (o *Order) AddItem(productID uuid.UUID, quantity int, unitValue decimal.Decimal, gemstone, sizeText string) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}
	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_ITEM", "Product already present on this order")
		}
	}

	size, customSize := NormalizeSize(sizeText)
	item := OrderItem{
		OrderID:    o.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitValue:  unitValue,
		Gemstone:   gemstone,
		Size:       size,
		CustomSize: customSize,
	}
	o.Items = append(o.Items, item)
	return &o.Items[len(o.Items)-1], nil
}

// UpdateHeader overwrites the header scalar fields. Items are never
// touched by an edit; they are immutable after creation.
func (o *Order) UpdateHeader(orderDate time.Time, totalValue decimal.Decimal, status OrderStatus) error {
	if !status.Valid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+string(status))
	}
	if totalValue.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Total value cannot be negative")
	}
	o.OrderDate = orderDate
	o.TotalValue = totalValue
	o.Status = status
	return nil
}
