package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/partner"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	CNPJ      string `json:"cnpj" binding:"required,min=14,max=18"`
	TradeName string `json:"trade_name" binding:"required,min=1,max=200"`
	Email     string `json:"email" binding:"required,email,max=200"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	TradeName string `json:"trade_name" binding:"required,min=1,max=200"`
	Email     string `json:"email" binding:"required,email,max=200"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID  `json:"id"`
	CNPJ      string     `json:"cnpj"`
	TradeName string     `json:"trade_name"`
	Email     string     `json:"email"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToClientResponse converts a domain client to its response form
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		CNPJ:      client.CNPJ,
		TradeName: client.TradeName,
		Email:     client.Email,
		UserID:    client.UserID,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// =============================================================================
// Contact DTOs
// =============================================================================

// ContactRequest represents a request to create or update a contact
type ContactRequest struct {
	Street      string `json:"street" binding:"max=200"`
	District    string `json:"district" binding:"max=100"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"omitempty,len=2"`
	ZipCode     string `json:"zip_code" binding:"max=9"`
	Complement  string `json:"complement" binding:"max=100"`
	HouseNumber string `json:"house_number" binding:"max=20"`
	Phone       string `json:"phone" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	Street      string    `json:"street"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zip_code"`
	Complement  string    `json:"complement,omitempty"`
	HouseNumber string    `json:"house_number"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToContactResponse converts a domain contact to its response form
func ToContactResponse(contact *partner.Contact) ContactResponse {
	return ContactResponse{
		ID:          contact.ID,
		Street:      contact.Street,
		District:    contact.District,
		City:        contact.City,
		State:       contact.State,
		ZipCode:     contact.ZipCode,
		Complement:  contact.Complement,
		HouseNumber: contact.HouseNumber,
		Phone:       contact.Phone,
		Email:       contact.Email,
		CreatedAt:   contact.CreatedAt,
		UpdatedAt:   contact.UpdatedAt,
	}
}
