package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/identity"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse carries the issued bearer token and the account it belongs to
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// =============================================================================
// User DTOs
// =============================================================================

// CreateUserRequest represents a request to create a new user account
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email,max=200"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	AccessLevel string `json:"access_level" binding:"required,accesslevel"`
}

// UpdateUserRequest represents a request to update a user account
type UpdateUserRequest struct {
	Password    *string `json:"password" binding:"omitempty,min=8,max=72"`
	AccessLevel *string `json:"access_level" binding:"omitempty,accesslevel"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	AccessLevel string     `json:"access_level"`
	ContactID   *uuid.UUID `json:"contact_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToUserResponse converts a domain user to its response form
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		AccessLevel: string(user.AccessLevel),
		ContactID:   user.ContactID,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest represents a request to create a new employee
type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	CPF      string `json:"cpf" binding:"required,min=11,max=14"`
	Position string `json:"position" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=200"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Position string `json:"position" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=200"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CPF       string     `json:"cpf"`
	Position  string     `json:"position"`
	Email     string     `json:"email"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	ContactID *uuid.UUID `json:"contact_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToEmployeeResponse converts a domain employee to its response form
func ToEmployeeResponse(employee *identity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		CPF:       employee.CPF,
		Position:  employee.Position,
		Email:     employee.Email,
		UserID:    employee.UserID,
		ContactID: employee.ContactID,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}
