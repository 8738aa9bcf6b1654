package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// OpportunityRepository defines the interface for opportunity persistence
type OpportunityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Opportunity, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Opportunity, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Opportunity, error)
	Save(ctx context.Context, opportunity *Opportunity) error

	// Delete removes an opportunity. Implementations surface
	// shared.ErrConflict when an order still references it.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsForClient(ctx context.Context, clientID uuid.UUID) (bool, error)
}

// OrderRepository defines the interface for order persistence.
//
// Submit is the transactional insertion path of the intake flow: the
// header, the atomic stock decrement for every item and the item rows
// commit or roll back as one unit.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsForOpportunity(ctx context.Context, opportunityID uuid.UUID) (bool, error)

	// Submit persists the header and all items in one transaction,
	// decrementing each product's stock with a guarded update. A missing
	// product or insufficient stock rolls the whole call back and
	// returns shared.ErrNotFound or shared.ErrInsufficientStock.
	Submit(ctx context.Context, order *Order) error

	// UpdateHeader persists header scalar changes only
	UpdateHeader(ctx context.Context, order *Order) error

	// Delete removes all items, then the header, in one transaction.
	// Referential-integrity violations surface as shared.ErrConflict.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// AddItemViaProcedure invokes the database's validate-and-decrement
	// insertion procedure. A rejection carries the database's message
	// verbatim inside the returned domain error.
	AddItemViaProcedure(ctx context.Context, orderID, productID uuid.UUID, quantity int) error
}
