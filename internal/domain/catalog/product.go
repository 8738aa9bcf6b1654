package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// Product represents a catalog item. Its stock quantity is a shared,
// concurrently-mutated resource; the order flow must only change it
// through the repository's atomic decrement.
type Product struct {
	shared.BaseEntity
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	TypeCode      int             `gorm:"not null" json:"type_code"`
	Size          float64         `gorm:"not null" json:"size"`
	UnitValue     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_value"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	Material      string          `gorm:"type:varchar(100);not null" json:"material"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, typeCode int, size float64, unitValue decimal.Decimal, stockQuantity int, material string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if unitValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Unit value cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	material = strings.TrimSpace(material)
	if material == "" {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Material cannot be empty")
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		Description:   strings.TrimSpace(description),
		TypeCode:      typeCode,
		Size:          size,
		UnitValue:     unitValue,
		StockQuantity: stockQuantity,
		Material:      material,
	}, nil
}

// HasStock reports whether the product can cover the requested quantity.
// The check is advisory; the persistence layer re-validates atomically
// when stock is actually decremented.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && quantity <= p.StockQuantity
}

// Update overwrites the product's mutable fields
func (p *Product) Update(name, description string, typeCode int, size float64, unitValue decimal.Decimal, stockQuantity int, material string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if unitValue.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Unit value cannot be negative")
	}
	if stockQuantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.TypeCode = typeCode
	p.Size = size
	p.UnitValue = unitValue
	p.StockQuantity = stockQuantity
	p.Material = strings.TrimSpace(material)
	return nil
}
