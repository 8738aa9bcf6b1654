package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/partner"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
)

// OpportunityService handles sales-funnel opportunity operations
type OpportunityService struct {
	opportunities sales.OpportunityRepository
	clients       partner.ClientRepository
	recorder      *auditapp.Recorder
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(
	opportunities sales.OpportunityRepository,
	clients partner.ClientRepository,
	recorder *auditapp.Recorder,
) *OpportunityService {
	return &OpportunityService{
		opportunities: opportunities,
		clients:       clients,
		recorder:      recorder,
	}
}

// Create creates a new opportunity for an existing client
func (s *OpportunityService) Create(ctx context.Context, actor identity.Actor, req OpportunityRequest) (*OpportunityResponse, error) {
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	opportunity, err := sales.NewOpportunity(req.Name, req.EstimatedValue,
		sales.FunnelStage(req.Stage), req.EstimatedCloseDate, req.ClientID)
	if err != nil {
		return nil, err
	}

	if err := s.opportunities.Save(ctx, opportunity); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Oportunidade Criada", audit.ActivityOpportunities, "Gestão de Oportunidades",
		auditapp.Describe("Oportunidade", fmt.Sprintf("%s criada", opportunity.Name), actor))

	response := ToOpportunityResponse(opportunity)
	return &response, nil
}

// GetByID retrieves an opportunity by ID
func (s *OpportunityService) GetByID(ctx context.Context, id uuid.UUID) (*OpportunityResponse, error) {
	opportunity, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOpportunityResponse(opportunity)
	return &response, nil
}

// List retrieves opportunities with filtering and pagination
func (s *OpportunityService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OpportunityResponse], error) {
	filter.Normalize()

	opportunities, err := s.opportunities.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.opportunities.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		items = append(items, ToOpportunityResponse(&opportunities[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByClient retrieves every opportunity belonging to one client,
// newest first
func (s *OpportunityService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]OpportunityResponse, error) {
	opportunities, err := s.opportunities.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		items = append(items, ToOpportunityResponse(&opportunities[i]))
	}
	return items, nil
}

// Update updates an opportunity's mutable fields. The owning client
// never changes after creation.
func (s *OpportunityService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req OpportunityRequest) (*OpportunityResponse, error) {
	opportunity, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := opportunity.Update(req.Name, req.EstimatedValue,
		sales.FunnelStage(req.Stage), req.EstimatedCloseDate); err != nil {
		return nil, err
	}

	if err := s.opportunities.Save(ctx, opportunity); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Oportunidade Editada", audit.ActivityOpportunities, "Gestão de Oportunidades",
		auditapp.Describe("Oportunidade", fmt.Sprintf("%s editada", opportunity.Name), actor))

	response := ToOpportunityResponse(opportunity)
	return &response, nil
}

// Delete removes an opportunity. Opportunities already converted into
// an order stay in place and the caller gets a conflict.
func (s *OpportunityService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := s.opportunities.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "Oportunidade Removida", audit.ActivityOpportunities, "Gestão de Oportunidades",
		auditapp.Describe("Oportunidade", fmt.Sprintf("%s removida", id), actor))

	return nil
}
