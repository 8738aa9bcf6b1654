package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByCPF(ctx context.Context, cpf string) (*Employee, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)
	Save(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
}
