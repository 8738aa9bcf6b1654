package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	identityapp "github.com/landryjoias/crm/internal/application/identity"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/shared"
	"github.com/landryjoias/crm/internal/infrastructure/auth"
	"github.com/landryjoias/crm/internal/infrastructure/config"
)

func setupAuthHandler(users *MockUserRepository, entries *MockEntryRepository) *AuthHandler {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-for-auth-handler-tests",
		Expiration: time.Hour,
		Issuer:     "crm-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := identityapp.NewAuthService(users, jwtService, blacklist, newRecorderForTest(entries), zap.NewNop())
	return NewAuthHandler(service)
}

func createTestUser(t *testing.T, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser("vendas@landryjoias.com", password, identity.AccessLevelStandard)
	assert.NoError(t, err)
	return user
}

func TestAuthHandler_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	entries := new(MockEntryRepository)
	handler := setupAuthHandler(users, entries)

	user := createTestUser(t, "senha-secreta")
	users.On("FindByEmail", mock.Anything, "vendas@landryjoias.com").Return(user, nil)
	entries.On("Save", mock.Anything, mock.Anything).Return(nil)

	router := gin.New()
	router.POST("/auth/login", handler.Login)

	body, _ := json.Marshal(identityapp.LoginRequest{
		Email:    "vendas@landryjoias.com",
		Password: "senha-secreta",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var login identityapp.LoginResponse
	assert.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, "vendas@landryjoias.com", login.User.Email)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	entries := new(MockEntryRepository)
	handler := setupAuthHandler(users, entries)

	user := createTestUser(t, "senha-secreta")
	users.On("FindByEmail", mock.Anything, "vendas@landryjoias.com").Return(user, nil)

	router := gin.New()
	router.POST("/auth/login", handler.Login)

	body, _ := json.Marshal(identityapp.LoginRequest{
		Email:    "vendas@landryjoias.com",
		Password: "senha-errada",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	entries.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	entries := new(MockEntryRepository)
	handler := setupAuthHandler(users, entries)

	users.On("FindByEmail", mock.Anything, "desconhecido@landryjoias.com").
		Return(nil, shared.ErrNotFound)

	router := gin.New()
	router.POST("/auth/login", handler.Login)

	body, _ := json.Marshal(identityapp.LoginRequest{
		Email:    "desconhecido@landryjoias.com",
		Password: "qualquer-senha",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestAuthHandler_Me_WithoutClaims(t *testing.T) {
	users := new(MockUserRepository)
	entries := new(MockEntryRepository)
	handler := setupAuthHandler(users, entries)

	router := gin.New()
	router.GET("/auth/me", handler.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_ReturnsAccount(t *testing.T) {
	users := new(MockUserRepository)
	entries := new(MockEntryRepository)
	handler := setupAuthHandler(users, entries)

	user := createTestUser(t, "senha-secreta")
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("jwt_claims", &auth.Claims{
			UserID:      user.ID.String(),
			Email:       user.Email,
			AccessLevel: string(user.AccessLevel),
		})
		c.Next()
	})
	router.GET("/auth/me", handler.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var me identityapp.UserResponse
	env := decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, user.Email, me.Email)
}
