package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/shared"
)

var employeeOrderColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"position":   true,
	"email":      true,
}

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Employee, error) {
	var employee identity.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindByCPF finds an employee by CPF
func (r *GormEmployeeRepository) FindByCPF(ctx context.Context, cpf string) (*identity.Employee, error) {
	var employee identity.Employee
	if err := r.db.WithContext(ctx).First(&employee, "cpf = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindAll finds all employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Employee, error) {
	var employees []identity.Employee
	query := r.db.WithContext(ctx).Model(&identity.Employee{})
	query = applySearch(query, filter, "name", "cpf", "position", "email")
	query = applyOrdering(query, filter, employeeOrderColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *identity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete deletes an employee
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&identity.Employee{})
	query = applySearch(query, filter, "name", "cpf", "position", "email")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCPF checks if an employee with the given CPF exists
func (r *GormEmployeeRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Employee{}).
		Where("cpf = ?", cpf).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ identity.EmployeeRepository = (*GormEmployeeRepository)(nil)
