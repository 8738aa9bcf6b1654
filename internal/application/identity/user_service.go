package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/shared"
)

// UserService handles user-account management
type UserService struct {
	users    identity.UserRepository
	recorder *auditapp.Recorder
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, recorder *auditapp.Recorder) *UserService {
	return &UserService{
		users:    users,
		recorder: recorder,
	}
}

// Create creates a new user account. Only elevated actors may create accounts.
func (s *UserService) Create(ctx context.Context, actor identity.Actor, req CreateUserRequest) (*UserResponse, error) {
	if !actor.Elevated() {
		return nil, shared.ErrForbidden
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Password, identity.AccessLevel(req.AccessLevel))
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Conta Criada", audit.ActivityAccounts, "Gestão de Contas",
		auditapp.Describe("Conta", fmt.Sprintf("%s criada", user.Email), actor))

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves user accounts with pagination
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	filter.Normalize()

	users, err := s.users.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, ToUserResponse(&users[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update changes a user's password and/or access level. Only elevated
// actors may change other accounts; anyone may change their own password.
func (s *UserService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	self := actor.UserID != nil && *actor.UserID == id
	if !self && !actor.Elevated() {
		return nil, shared.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.AccessLevel != nil {
		if !actor.Elevated() {
			return nil, shared.ErrForbidden
		}
		if err := user.ChangeAccessLevel(identity.AccessLevel(*req.AccessLevel)); err != nil {
			return nil, err
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Conta Editada", audit.ActivityAccounts, "Gestão de Contas",
		auditapp.Describe("Conta", fmt.Sprintf("%s editada", user.Email), actor))

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user account. Only elevated actors may delete accounts.
func (s *UserService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if !actor.Elevated() {
		return shared.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "Conta Removida", audit.ActivityAccounts, "Gestão de Contas",
		auditapp.Describe("Conta", fmt.Sprintf("%s removida", id), actor))

	return nil
}
