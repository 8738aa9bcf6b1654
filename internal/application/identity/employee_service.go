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

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employees identity.EmployeeRepository
	recorder  *auditapp.Recorder
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employees identity.EmployeeRepository, recorder *auditapp.Recorder) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		recorder:  recorder,
	}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, actor identity.Actor, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employees.ExistsByCPF(ctx, req.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this CPF already exists")
	}

	employee, err := identity.NewEmployee(req.Name, req.CPF, req.Position, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Funcionário Criado", audit.ActivityAccounts, "Gestão de Funcionários",
		auditapp.Describe("Funcionário", fmt.Sprintf("%s criado", employee.Name), actor))

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees with pagination
func (s *EmployeeService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[EmployeeResponse], error) {
	filter.Normalize()

	employees, err := s.employees.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.employees.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, ToEmployeeResponse(&employees[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update overwrites an employee's mutable fields. The CPF never changes.
func (s *EmployeeService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := employee.Update(req.Name, req.Position, req.Email); err != nil {
		return nil, err
	}

	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Funcionário Editado", audit.ActivityAccounts, "Gestão de Funcionários",
		auditapp.Describe("Funcionário", fmt.Sprintf("%s editado", employee.Name), actor))

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "Funcionário Removido", audit.ActivityAccounts, "Gestão de Funcionários",
		auditapp.Describe("Funcionário", fmt.Sprintf("%s removido", id), actor))

	return nil
}
