package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	partnerapp "github.com/landryjoias/crm/internal/application/partner"
	salesapp "github.com/landryjoias/crm/internal/application/sales"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/partner"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
)

func setupClientHandler(clients *MockClientRepository, opportunities *MockOpportunityRepository, entries *MockEntryRepository) *ClientHandler {
	recorder := newRecorderForTest(entries)
	clientService := partnerapp.NewClientService(clients, recorder)
	opportunityService := salesapp.NewOpportunityService(opportunities, clients, recorder)
	return NewClientHandler(clientService, opportunityService)
}

func createTestClient(t *testing.T) *partner.Client {
	t.Helper()
	client, err := partner.NewClient("12.345.678/0001-90", "Joalheria Aurora", "contato@aurora.com.br")
	assert.NoError(t, err)
	return client
}

func TestClientHandler_Create_Success(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	clients.On("ExistsByCNPJ", mock.Anything, "12.345.678/0001-90").Return(false, nil)
	clients.On("ExistsByEmail", mock.Anything, "contato@aurora.com.br").Return(false, nil)
	clients.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).Return(nil)
	entries.On("Save", mock.Anything, mock.Anything).Return(nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/clients", handler.Create)

	body, _ := json.Marshal(partnerapp.CreateClientRequest{
		CNPJ:      "12.345.678/0001-90",
		TradeName: "Joalheria Aurora",
		Email:     "contato@aurora.com.br",
	})
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	clients.AssertExpectations(t)
}

func TestClientHandler_Create_DuplicateCNPJ(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	clients.On("ExistsByCNPJ", mock.Anything, "12.345.678/0001-90").Return(true, nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/clients", handler.Create)

	body, _ := json.Marshal(partnerapp.CreateClientRequest{
		CNPJ:      "12.345.678/0001-90",
		TradeName: "Joalheria Aurora",
		Email:     "contato@aurora.com.br",
	})
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "ALREADY_EXISTS", env.Error.Code)
	clients.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestClientHandler_Create_InvalidEmail(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/clients", handler.Create)

	body, _ := json.Marshal(map[string]string{
		"cnpj":       "12.345.678/0001-90",
		"trade_name": "Joalheria Aurora",
		"email":      "not-an-email",
	})
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestClientHandler_GetByID_NotFound(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	id := uuid.New()
	clients.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.GET("/clients/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+id.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_List_WithMeta(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	stored := createTestClient(t)
	clients.On("FindAll", mock.Anything, mock.Anything).Return([]partner.Client{*stored}, nil)
	clients.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.GET("/clients", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/clients?page=1&page_size=20", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	if assert.NotNil(t, env.Meta) {
		assert.Equal(t, int64(1), env.Meta.Total)
		assert.Equal(t, 1, env.Meta.Page)
		assert.Equal(t, 20, env.Meta.PageSize)
	}
}

func TestClientHandler_Delete_ConflictWhileReferenced(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	id := uuid.New()
	clients.On("Delete", mock.Anything, id).Return(shared.ErrConflict)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.DELETE("/clients/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+id.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestClientHandler_ListOpportunities(t *testing.T) {
	clients := new(MockClientRepository)
	opportunities := new(MockOpportunityRepository)
	entries := new(MockEntryRepository)
	handler := setupClientHandler(clients, opportunities, entries)

	clientID := uuid.New()
	opportunities.On("FindByClient", mock.Anything, clientID).
		Return([]sales.Opportunity{}, nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.GET("/clients/:id/opportunities", handler.ListOpportunities)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/opportunities", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	opportunities.AssertExpectations(t)
}
