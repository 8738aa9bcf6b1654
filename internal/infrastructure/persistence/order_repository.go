package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/catalog"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
)

var orderOrderColumns = map[string]bool{
	"created_at":  true,
	"order_date":  true,
	"total_value": true,
	"status":      true,
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, items included
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	var order sales.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter, items included
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Order, error) {
	var orders []sales.Order
	query := r.db.WithContext(ctx).Model(&sales.Order{}).Preload("Items")
	query = applySearch(query, filter, "status")
	query = applyOrdering(query, filter, orderOrderColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ExistsByID checks if an order with the given ID exists
func (r *GormOrderRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Order{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsForOpportunity checks if an order already references the opportunity
func (r *GormOrderRepository) ExistsForOpportunity(ctx context.Context, opportunityID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Order{}).
		Where("opportunity_id = ?", opportunityID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Submit persists the order header and all its items in one transaction.
// Each item's stock is taken with a guarded decrement so that two
// concurrent submissions can never drive a product's stock negative.
// Any failure rolls the whole submission back.
func (r *GormOrderRepository) Submit(ctx context.Context, order *sales.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]

			if err := decrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// decrementStock subtracts quantity from the product's stock, but only
// when enough stock remains. Zero affected rows means the product is
// either missing or short on stock; the two cases are told apart with
// a follow-up read inside the same transaction.
func decrementStock(tx *gorm.DB, productID uuid.UUID, quantity int) error {
	result := tx.Model(&catalog.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&catalog.Product{}).
			Where("id = ?", productID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrInsufficientStock
	}
	return nil
}

// UpdateHeader persists changes to the order's scalar fields only.
// Items are never written by this path.
func (r *GormOrderRepository) UpdateHeader(ctx context.Context, order *sales.Order) error {
	result := r.db.WithContext(ctx).
		Model(&sales.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"order_date":  order.OrderDate,
			"total_value": order.TotalValue,
			"status":      order.Status,
			"updated_at":  order.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the order's items and then its header, as one
// transaction so a failure leaves both in place
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&sales.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&sales.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sales.Order{})
	query = applySearch(query, filter, "status")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddItemViaProcedure appends one item to an existing order through the
// database's validate-and-decrement procedure. The procedure re-reads
// the product's current price, checks stock and inserts the line; a
// rejection surfaces with the database's message kept verbatim.
func (r *GormOrderRepository) AddItemViaProcedure(ctx context.Context, orderID, productID uuid.UUID, quantity int) error {
	err := r.db.WithContext(ctx).
		Exec("CALL sp_adicionar_item_pedido(?, ?, ?)", orderID, productID, quantity).Error
	if err != nil {
		return shared.NewDomainError("PROCEDURE_REJECTED", err.Error())
	}
	return nil
}

var _ sales.OrderRepository = (*GormOrderRepository)(nil)
