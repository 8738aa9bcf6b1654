package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/partner"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
)

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByCNPJ(ctx context.Context, cnpj string) (*partner.Client, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	args := m.Called(ctx, cnpj)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newOpportunityServiceForTest(opportunities *MockOpportunityRepository, clients *MockClientRepository, entries *MockEntryRepository) *OpportunityService {
	recorder := auditapp.NewRecorder(entries, zap.NewNop())
	return NewOpportunityService(opportunities, clients, recorder)
}

func validOpportunityRequest(clientID uuid.UUID) OpportunityRequest {
	return OpportunityRequest{
		Name:               "Coleção de verão",
		EstimatedValue:     decimal.NewFromInt(15000),
		Stage:              string(sales.StageProspecting),
		EstimatedCloseDate: time.Now().AddDate(0, 1, 0),
		ClientID:           clientID,
	}
}

func TestOpportunityService_Create_Success(t *testing.T) {
	mockOpportunities := new(MockOpportunityRepository)
	mockClients := new(MockClientRepository)
	mockEntries := new(MockEntryRepository)
	service := newOpportunityServiceForTest(mockOpportunities, mockClients, mockEntries)

	ctx := context.Background()
	actor := newTestActor(identity.AccessLevelStandard)
	client, err := partner.NewClient("12.345.678/0001-95", "Landry Joias", "contato@landryjoias.com")
	assert.NoError(t, err)
	req := validOpportunityRequest(client.ID)

	mockClients.On("FindByID", ctx, client.ID).Return(client, nil)
	mockOpportunities.On("Save", ctx, mock.AnythingOfType("*sales.Opportunity")).Return(nil)
	mockEntries.On("Save", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil)

	result, err := service.Create(ctx, actor, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Coleção de verão", result.Name)
	assert.Equal(t, string(sales.StageProspecting), result.Stage)
	assert.Equal(t, client.ID, result.ClientID)
	mockOpportunities.AssertExpectations(t)
	mockEntries.AssertNumberOfCalls(t, "Save", 1)
}

func TestOpportunityService_Create_UnknownClient(t *testing.T) {
	mockOpportunities := new(MockOpportunityRepository)
	mockClients := new(MockClientRepository)
	mockEntries := new(MockEntryRepository)
	service := newOpportunityServiceForTest(mockOpportunities, mockClients, mockEntries)

	ctx := context.Background()
	actor := newTestActor(identity.AccessLevelStandard)
	clientID := uuid.New()

	mockClients.On("FindByID", ctx, clientID).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, actor, validOpportunityRequest(clientID))

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Nil(t, result)
	mockOpportunities.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOpportunityService_Create_InvalidStage(t *testing.T) {
	mockOpportunities := new(MockOpportunityRepository)
	mockClients := new(MockClientRepository)
	mockEntries := new(MockEntryRepository)
	service := newOpportunityServiceForTest(mockOpportunities, mockClients, mockEntries)

	ctx := context.Background()
	actor := newTestActor(identity.AccessLevelStandard)
	client, err := partner.NewClient("12.345.678/0001-95", "Landry Joias", "contato@landryjoias.com")
	assert.NoError(t, err)

	req := validOpportunityRequest(client.ID)
	req.Stage = "GANHA"

	mockClients.On("FindByID", ctx, client.ID).Return(client, nil)

	result, err := service.Create(ctx, actor, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STAGE", domainErr.Code)
}

func TestOpportunityService_Update_Success(t *testing.T) {
	mockOpportunities := new(MockOpportunityRepository)
	mockClients := new(MockClientRepository)
	mockEntries := new(MockEntryRepository)
	service := newOpportunityServiceForTest(mockOpportunities, mockClients, mockEntries)

	ctx := context.Background()
	actor := newTestActor(identity.AccessLevelStandard)
	opportunity, err := sales.NewOpportunity("Coleção de verão", decimal.NewFromInt(15000),
		sales.StageProspecting, time.Now().AddDate(0, 1, 0), uuid.New())
	assert.NoError(t, err)

	req := validOpportunityRequest(opportunity.ClientID)
	req.Name = "Coleção de inverno"
	req.Stage = string(sales.StageNegotiation)

	mockOpportunities.On("FindByID", ctx, opportunity.ID).Return(opportunity, nil)
	mockOpportunities.On("Save", ctx, opportunity).Return(nil)
	mockEntries.On("Save", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil)

	result, err := service.Update(ctx, actor, opportunity.ID, req)

	assert.NoError(t, err)
	assert.Equal(t, "Coleção de inverno", result.Name)
	assert.Equal(t, string(sales.StageNegotiation), result.Stage)
	mockOpportunities.AssertExpectations(t)
}

func TestOpportunityService_Delete_Conflict(t *testing.T) {
	mockOpportunities := new(MockOpportunityRepository)
	mockClients := new(MockClientRepository)
	mockEntries := new(MockEntryRepository)
	service := newOpportunityServiceForTest(mockOpportunities, mockClients, mockEntries)

	ctx := context.Background()
	actor := newTestActor(identity.AccessLevelStandard)
	opportunityID := uuid.New()

	mockOpportunities.On("Delete", ctx, opportunityID).Return(shared.ErrConflict)

	err := service.Delete(ctx, actor, opportunityID)

	assert.ErrorIs(t, err, shared.ErrConflict)
	mockEntries.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOpportunityService_ListByClient(t *testing.T) {
	mockOpportunities := new(MockOpportunityRepository)
	mockClients := new(MockClientRepository)
	mockEntries := new(MockEntryRepository)
	service := newOpportunityServiceForTest(mockOpportunities, mockClients, mockEntries)

	ctx := context.Background()
	clientID := uuid.New()
	first, err := sales.NewOpportunity("Coleção de verão", decimal.NewFromInt(15000),
		sales.StageProspecting, time.Now().AddDate(0, 1, 0), clientID)
	assert.NoError(t, err)
	second, err := sales.NewOpportunity("Aliança sob medida", decimal.NewFromInt(4200),
		sales.StageProposal, time.Now().AddDate(0, 2, 0), clientID)
	assert.NoError(t, err)

	mockOpportunities.On("FindByClient", ctx, clientID).Return([]sales.Opportunity{*second, *first}, nil)

	result, err := service.ListByClient(ctx, clientID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Aliança sob medida", result[0].Name)
	mockOpportunities.AssertExpectations(t)
}
