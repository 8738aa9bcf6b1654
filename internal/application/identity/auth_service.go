package identity

import (
	"context"

	"go.uber.org/zap"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/shared"
	"github.com/landryjoias/crm/internal/infrastructure/auth"
)

// AuthService handles login, logout and session introspection
type AuthService struct {
	users     identity.UserRepository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	recorder  *auditapp.Recorder
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	jwt *auth.JWTService,
	blacklist auth.TokenBlacklist,
	recorder *auditapp.Recorder,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		jwt:       jwt,
		blacklist: blacklist,
		recorder:  recorder,
		logger:    logger.Named("auth"),
	}
}

// Login checks the credentials and issues a bearer token. A wrong email
// and a wrong password produce the same UNAUTHORIZED answer.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		s.logger.Info("rejected login", zap.String("email", user.Email))
		return nil, shared.ErrUnauthorized
	}

	token, err := s.jwt.GenerateToken(auth.GenerateTokenInput{
		UserID:      user.ID,
		Email:       user.Email,
		AccessLevel: string(user.AccessLevel),
	})
	if err != nil {
		return nil, err
	}

	actor := identity.Actor{UserID: &user.ID, Email: user.Email, Level: user.AccessLevel}
	s.recorder.Record(ctx, actor, "Login Realizado", audit.ActivityAccounts, "Gestão de Contas",
		auditapp.Describe("Login", "realizado", actor))

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        ToUserResponse(user),
	}, nil
}

// Logout blacklists the token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

// Me returns the account behind the presented token
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}
