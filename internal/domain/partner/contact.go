package partner

import (
	"strings"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// Contact holds address and phone details for an employee or user
type Contact struct {
	shared.BaseEntity
	Street      string `gorm:"type:varchar(200)" json:"street"`
	District    string `gorm:"type:varchar(100)" json:"district"`
	City        string `gorm:"type:varchar(100)" json:"city"`
	State       string `gorm:"type:varchar(2)" json:"state"`
	ZipCode     string `gorm:"type:varchar(9)" json:"zip_code"`
	Complement  string `gorm:"type:varchar(100)" json:"complement,omitempty"`
	HouseNumber string `gorm:"type:varchar(20)" json:"house_number"`
	Phone       string `gorm:"type:varchar(20)" json:"phone"`
	Email       string `gorm:"type:varchar(200)" json:"email"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact creates a new contact record
func NewContact(street, district, city, state, zipCode, houseNumber, phone, email string) (*Contact, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state != "" && len(state) != 2 {
		return nil, shared.NewDomainError("INVALID_STATE", "State must be a two-letter code")
	}
	return &Contact{
		BaseEntity:  shared.NewBaseEntity(),
		Street:      strings.TrimSpace(street),
		District:    strings.TrimSpace(district),
		City:        strings.TrimSpace(city),
		State:       state,
		ZipCode:     strings.TrimSpace(zipCode),
		HouseNumber: strings.TrimSpace(houseNumber),
		Phone:       strings.TrimSpace(phone),
		Email:       strings.ToLower(strings.TrimSpace(email)),
	}, nil
}

// Update overwrites the contact's fields
func (c *Contact) Update(street, district, city, state, zipCode, complement, houseNumber, phone, email string) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state != "" && len(state) != 2 {
		return shared.NewDomainError("INVALID_STATE", "State must be a two-letter code")
	}
	c.Street = strings.TrimSpace(street)
	c.District = strings.TrimSpace(district)
	c.City = strings.TrimSpace(city)
	c.State = state
	c.ZipCode = strings.TrimSpace(zipCode)
	c.Complement = strings.TrimSpace(complement)
	c.HouseNumber = strings.TrimSpace(houseNumber)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.ToLower(strings.TrimSpace(email))
	return nil
}
