package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/partner"
	"github.com/landryjoias/crm/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clients  partner.ClientRepository
	recorder *auditapp.Recorder
}

// NewClientService creates a new ClientService
func NewClientService(clients partner.ClientRepository, recorder *auditapp.Recorder) *ClientService {
	return &ClientService{
		clients:  clients,
		recorder: recorder,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, actor identity.Actor, req CreateClientRequest) (*ClientResponse, error) {
	exists, err := s.clients.ExistsByCNPJ(ctx, req.CNPJ)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this CNPJ already exists")
	}

	exists, err = s.clients.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
	}

	client, err := partner.NewClient(req.CNPJ, req.TradeName, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Cliente Criado", audit.ActivityClients, "Gestão de Clientes",
		auditapp.Describe("Cliente", fmt.Sprintf("%s criado", client.TradeName), actor))

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ClientResponse], error) {
	filter.Normalize()

	clients, err := s.clients.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.clients.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, ToClientResponse(&clients[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update updates a client's mutable fields
func (s *ClientService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.Update(req.TradeName, req.Email); err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Cliente Editado", audit.ActivityClients, "Gestão de Clientes",
		auditapp.Describe("Cliente", fmt.Sprintf("%s editado", client.TradeName), actor))

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client. Clients with dependent opportunities stay
// in place and the caller gets a conflict.
func (s *ClientService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "Cliente Removido", audit.ActivityClients, "Gestão de Clientes",
		auditapp.Describe("Cliente", fmt.Sprintf("%s removido", id), actor))

	return nil
}
