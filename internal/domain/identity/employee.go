package identity

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

var cpfPattern = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)

// Employee represents a staff member of the business
type Employee struct {
	shared.BaseEntity
	Name      string     `gorm:"type:varchar(200);not null" json:"name"`
	CPF       string     `gorm:"type:varchar(14);not null;uniqueIndex" json:"cpf"`
	Position  string     `gorm:"type:varchar(100);not null" json:"position"`
	Email     string     `gorm:"type:varchar(200);not null" json:"email"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	ContactID *uuid.UUID `gorm:"type:uuid" json:"contact_id,omitempty"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee
func NewEmployee(name, cpf, position, email string) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	cpf = strings.TrimSpace(cpf)
	if !cpfPattern.MatchString(cpf) {
		return nil, shared.NewDomainError("INVALID_CPF", "CPF is not valid")
	}
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}

	return &Employee{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		CPF:        cpf,
		Position:   position,
		Email:      email,
	}, nil
}

// Update overwrites the employee's mutable fields
func (e *Employee) Update(name, position, email string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	position = strings.TrimSpace(position)
	if position == "" {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	e.Name = name
	e.Position = position
	e.Email = email
	return nil
}

// LinkUser associates a login account with the employee
func (e *Employee) LinkUser(userID uuid.UUID) {
	e.UserID = &userID
}

// LinkContact associates a contact record with the employee
func (e *Employee) LinkContact(contactID uuid.UUID) {
	e.ContactID = &contactID
}
