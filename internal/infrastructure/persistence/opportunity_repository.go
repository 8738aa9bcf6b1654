package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/domain/shared"
)

var opportunityOrderColumns = map[string]bool{
	"created_at":           true,
	"name":                 true,
	"estimated_value":      true,
	"stage":                true,
	"estimated_close_date": true,
}

// GormOpportunityRepository implements OpportunityRepository using GORM
type GormOpportunityRepository struct {
	db *gorm.DB
}

// NewGormOpportunityRepository creates a new GormOpportunityRepository
func NewGormOpportunityRepository(db *gorm.DB) *GormOpportunityRepository {
	return &GormOpportunityRepository{db: db}
}

// FindByID finds an opportunity by its ID
func (r *GormOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Opportunity, error) {
	var opportunity sales.Opportunity
	if err := r.db.WithContext(ctx).First(&opportunity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &opportunity, nil
}

// FindAll finds all opportunities matching the filter
func (r *GormOpportunityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Opportunity, error) {
	var opportunities []sales.Opportunity
	query := r.db.WithContext(ctx).Model(&sales.Opportunity{})
	query = applySearch(query, filter, "name", "stage")
	query = applyOrdering(query, filter, opportunityOrderColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

// FindByClient finds all opportunities belonging to a client
func (r *GormOpportunityRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]sales.Opportunity, error) {
	var opportunities []sales.Opportunity
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

// Save creates or updates an opportunity
func (r *GormOpportunityRepository) Save(ctx context.Context, opportunity *sales.Opportunity) error {
	return r.db.WithContext(ctx).Save(opportunity).Error
}

// Delete deletes an opportunity. Opportunities referenced by an order
// cannot be removed; the caller gets shared.ErrConflict.
func (r *GormOpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&sales.Order{}).
			Where("opportunity_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return shared.ErrConflict
		}

		result := tx.Delete(&sales.Opportunity{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts opportunities matching the filter
func (r *GormOpportunityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sales.Opportunity{})
	query = applySearch(query, filter, "name", "stage")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsForClient checks if the client has at least one opportunity
func (r *GormOpportunityRepository) ExistsForClient(ctx context.Context, clientID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Opportunity{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ sales.OpportunityRepository = (*GormOpportunityRepository)(nil)
