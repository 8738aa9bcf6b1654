package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/partner"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
)

var clientOrderColumns = map[string]bool{
	"created_at": true,
	"trade_name": true,
	"email":      true,
}

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var client partner.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByCNPJ finds a client by its CNPJ
func (r *GormClientRepository) FindByCNPJ(ctx context.Context, cnpj string) (*partner.Client, error) {
	var client partner.Client
	if err := r.db.WithContext(ctx).First(&client, "cnpj = ?", cnpj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	var clients []partner.Client
	query := r.db.WithContext(ctx).Model(&partner.Client{})
	query = applySearch(query, filter, "trade_name", "cnpj", "email")
	query = applyOrdering(query, filter, clientOrderColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete deletes a client. Clients with dependent opportunities cannot
// be removed; the caller gets shared.ErrConflict instead of a cascade.
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&sales.Opportunity{}).
			Where("client_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return shared.ErrConflict
		}

		result := tx.Delete(&partner.Client{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&partner.Client{})
	query = applySearch(query, filter, "trade_name", "cnpj", "email")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCNPJ checks if a client with the given CNPJ exists
func (r *GormClientRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Client{}).
		Where("cnpj = ?", cnpj).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail checks if a client with the given email exists
func (r *GormClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Client{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ partner.ClientRepository = (*GormClientRepository)(nil)
