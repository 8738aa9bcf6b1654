package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	salesapp "github.com/landryjoias/crm/internal/application/sales"
	"github.com/landryjoias/crm/internal/domain/catalog"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
	"github.com/landryjoias/crm/internal/infrastructure/config"
)

func setupOrderHandler(orders *MockOrderRepository, opportunities *MockOpportunityRepository, products *MockProductRepository, entries *MockEntryRepository) *OrderHandler {
	service := salesapp.NewOrderService(orders, opportunities, products, newRecorderForTest(entries), config.OrdersConfig{})
	return NewOrderHandler(service)
}

func createTestProduct(t *testing.T, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Anel Solitário", "Peça em ouro 18k", 1, 18, decimal.NewFromFloat(899.90), stock, "Ouro")
	assert.NoError(t, err)
	return product
}

func submitOrderBody(productID uuid.UUID, quantity int) []byte {
	body, _ := json.Marshal(salesapp.SubmitOrderRequest{
		OrderDate:  time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		TotalValue: decimal.NewFromFloat(1799.80),
		Status:     string(sales.StatusPending),
		Items: []salesapp.SubmitOrderItemRequest{
			{ProductID: productID, Quantity: quantity, Gemstone: "Esmeralda", Size: "ARO_18"},
		},
	})
	return body
}

func TestOrderHandler_Submit_Success(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	product := createTestProduct(t, 10)

	products.On("FindByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)
	orders.On("Submit", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(nil)
	entries.On("Save", mock.Anything, mock.Anything).Return(nil)
	// The service re-reads the submitted order before answering
	orders.On("FindByID", mock.Anything, mock.Anything).Return(&sales.Order{}, nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/orders", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(submitOrderBody(product.ID, 2)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	orders.AssertCalled(t, "Submit", mock.Anything, mock.AnythingOfType("*sales.Order"))
}

func TestOrderHandler_Submit_InsufficientStock(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	product := createTestProduct(t, 1)
	products.On("FindByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/orders", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(submitOrderBody(product.ID, 2)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
	orders.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestOrderHandler_Submit_UnknownProduct(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	productID := uuid.New()
	products.On("FindByIDs", mock.Anything, []uuid.UUID{productID}).Return([]catalog.Product{}, nil)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/orders", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(submitOrderBody(productID, 2)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestOrderHandler_Submit_MissingItems(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/orders", handler.Submit)

	body, _ := json.Marshal(map[string]any{
		"order_date":  "2026-08-10T00:00:00Z",
		"total_value": "100.00",
		"status":      "PENDENTE",
		"items":       []any{},
	})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orders.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestOrderHandler_Delete_ForbiddenForStandardActor(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.DELETE("/orders/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderHandler_Delete_AllowedForManager(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	orderID := uuid.New()
	orders.On("Delete", mock.Anything, orderID).Return(nil)
	entries.On("Save", mock.Anything, mock.Anything).Return(nil)

	router := setupTestRouter(identity.AccessLevelManager)
	router.DELETE("/orders/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+orderID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	orders.AssertExpectations(t)
}

func TestOrderHandler_AddItem_ProcedureRejection(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	orderID := uuid.New()
	productID := uuid.New()
	orders.On("ExistsByID", mock.Anything, orderID).Return(true, nil)
	orders.On("AddItemViaProcedure", mock.Anything, orderID, productID, 3).
		Return(shared.NewDomainError("PROCEDURE_REJECTED", "ERRO: Estoque insuficiente para o produto informado"))

	router := setupTestRouter(identity.AccessLevelStandard)
	router.POST("/orders/:id/items/procedure", handler.AddItem)

	body, _ := json.Marshal(salesapp.AddItemRequest{ProductID: productID, Quantity: 3})
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID.String()+"/items/procedure", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "PROCEDURE_REJECTED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "Estoque insuficiente")
}

func TestOrderHandler_GetByID_InvalidID(t *testing.T) {
	orders := new(MockOrderRepository)
	opportunities := new(MockOpportunityRepository)
	products := new(MockProductRepository)
	entries := new(MockEntryRepository)
	handler := setupOrderHandler(orders, opportunities, products, entries)

	router := setupTestRouter(identity.AccessLevelStandard)
	router.GET("/orders/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
