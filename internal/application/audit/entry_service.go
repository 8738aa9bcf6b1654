package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/shared"
)

// EntryService exposes the audit trail for reading and manual upkeep
type EntryService struct {
	entries audit.EntryRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(entries audit.EntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

// Create records a manual audit entry attributed to the actor
func (s *EntryService) Create(ctx context.Context, actor identity.Actor, req CreateEntryRequest) (*EntryResponse, error) {
	entry, err := audit.NewEntry(req.Title, req.ActivityType, req.Subject, req.Description, actor.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// GetByID retrieves one audit entry
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// List retrieves audit entries, newest first
func (s *EntryService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[EntryResponse], error) {
	filter.Normalize()

	entries, err := s.entries.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.entries.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, ToEntryResponse(&entries[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update edits an entry's descriptive fields, never its timestamp
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, req UpdateEntryRequest) (*EntryResponse, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entry.Update(req.Title, req.ActivityType, req.Subject, req.Description); err != nil {
		return nil, err
	}

	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// Delete removes an audit entry
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.entries.Delete(ctx, id)
}
