package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/partner"
)

// ContactService handles contact records
type ContactService struct {
	contacts partner.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contacts partner.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create creates a new contact
func (s *ContactService) Create(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	contact, err := partner.NewContact(
		req.Street, req.District, req.City, req.State,
		req.ZipCode, req.HouseNumber, req.Phone, req.Email,
	)
	if err != nil {
		return nil, err
	}
	contact.Complement = req.Complement

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// Update overwrites a contact's fields
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req ContactRequest) (*ContactResponse, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := contact.Update(
		req.Street, req.District, req.City, req.State, req.ZipCode,
		req.Complement, req.HouseNumber, req.Phone, req.Email,
	); err != nil {
		return nil, err
	}

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// Delete removes a contact
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contacts.Delete(ctx, id)
}
