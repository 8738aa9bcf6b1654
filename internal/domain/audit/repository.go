package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// EntryRepository defines the interface for audit entry persistence
type EntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Entry, error)
	Save(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
