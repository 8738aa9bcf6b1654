package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/catalog"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
	"github.com/landryjoias/crm/internal/infrastructure/config"
)

// OrderService orchestrates the order intake flow: it resolves the
// opportunity link, pre-checks products and stock, and hands the fully
// built order to the repository for one transactional submit.
type OrderService struct {
	orders        sales.OrderRepository
	opportunities sales.OpportunityRepository
	products      catalog.ProductRepository
	recorder      *auditapp.Recorder
	cfg           config.OrdersConfig
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orders sales.OrderRepository,
	opportunities sales.OpportunityRepository,
	products catalog.ProductRepository,
	recorder *auditapp.Recorder,
	cfg config.OrdersConfig,
) *OrderService {
	return &OrderService{
		orders:        orders,
		opportunities: opportunities,
		products:      products,
		recorder:      recorder,
		cfg:           cfg,
	}
}

// Submit creates an order with all its items. Stock is pre-checked
// here for an early, friendly failure, then decremented atomically by
// the repository inside the submit transaction. Nothing is persisted
// unless every line fits.
func (s *OrderService) Submit(ctx context.Context, actor identity.Actor, req SubmitOrderRequest) (*OrderResponse, error) {
	order, err := sales.NewOrder(req.OrderDate, req.TotalValue, sales.OrderStatus(req.Status))
	if err != nil {
		return nil, err
	}

	if req.OpportunityID != nil {
		if err := s.resolveOpportunity(ctx, order, *req.OpportunityID); err != nil {
			return nil, err
		}
	}

	productIDs := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Product %s not found", item.ProductID))
		}
		if !product.HasStock(item.Quantity) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Insufficient stock for product %s", product.Name))
		}
		if _, err := order.AddItem(product.ID, item.Quantity, product.UnitValue, item.Gemstone, item.Size); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Submit(ctx, order); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Pedido Criado", audit.ActivityOrders, "Gestão de Pedidos",
		auditapp.Describe("Pedido", fmt.Sprintf("%s criado", order.ID), actor))

	persisted, err := s.orders.FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(persisted)
	return &response, nil
}

// resolveOpportunity links the order to its originating opportunity.
// An unknown opportunity is tolerated unless strict linking is on; an
// opportunity already converted into another order is always a conflict.
func (s *OrderService) resolveOpportunity(ctx context.Context, order *sales.Order, opportunityID uuid.UUID) error {
	opportunity, err := s.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) && !s.cfg.StrictOpportunityLink {
			return nil
		}
		return err
	}

	taken, err := s.orders.ExistsForOpportunity(ctx, opportunity.ID)
	if err != nil {
		return err
	}
	if taken {
		return shared.NewDomainError("CONFLICT",
			fmt.Sprintf("Opportunity %s is already converted into an order", opportunity.ID))
	}

	order.LinkOpportunity(opportunity.ID)
	return nil
}

// GetByID retrieves an order with its items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	filter.Normalize()

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, ToOrderResponse(&orders[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update edits the order header. Items and stock are never touched by
// an edit.
func (s *OrderService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousStatus := order.Status
	if err := order.UpdateHeader(req.OrderDate, req.TotalValue, sales.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateHeader(ctx, order); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("%s editado", order.ID)
	if previousStatus != order.Status {
		detail = fmt.Sprintf("%s editado (%s -> %s)", order.ID, previousStatus, order.Status)
	}
	s.recorder.Record(ctx, actor, "Pedido Editado", audit.ActivityOrders, "Gestão de Pedidos",
		auditapp.Describe("Pedido", detail, actor))

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete removes an order and all its lines. Restricted to elevated
// actors; removal does not restore stock.
func (s *OrderService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if !actor.Elevated() {
		return shared.ErrForbidden
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "Pedido Removido", audit.ActivityOrders, "Gestão de Pedidos",
		auditapp.Describe("Pedido", fmt.Sprintf("%s removido", id), actor))

	return nil
}

// AddItemViaProcedure appends one line to an existing order through
// the database procedure, which validates stock and decrements it
// server-side. A rejection carries the database's message verbatim.
func (s *OrderService) AddItemViaProcedure(ctx context.Context, actor identity.Actor, orderID uuid.UUID, req AddItemRequest) (*OrderResponse, error) {
	exists, err := s.orders.ExistsByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrNotFound
	}

	if err := s.orders.AddItemViaProcedure(ctx, orderID, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Pedido Editado", audit.ActivityOrders, "Gestão de Pedidos",
		auditapp.Describe("Pedido", fmt.Sprintf("%s recebeu novo item", orderID), actor))

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}
