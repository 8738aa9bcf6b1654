package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, client *Client) error

	// Delete removes a client. Implementations must surface
	// shared.ErrConflict when dependent opportunities or orders still
	// reference the client instead of cascading.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ContactRepository defines the interface for contact persistence
type ContactRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	Save(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}
