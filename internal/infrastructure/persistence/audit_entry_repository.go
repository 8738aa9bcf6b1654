package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/shared"
)

var auditOrderColumns = map[string]bool{
	"created_at":    true,
	"occurred_at":   true,
	"activity_type": true,
	"subject":       true,
}

// GormAuditEntryRepository implements EntryRepository using GORM
type GormAuditEntryRepository struct {
	db *gorm.DB
}

// NewGormAuditEntryRepository creates a new GormAuditEntryRepository
func NewGormAuditEntryRepository(db *gorm.DB) *GormAuditEntryRepository {
	return &GormAuditEntryRepository{db: db}
}

// FindByID finds an audit entry by its ID
func (r *GormAuditEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*audit.Entry, error) {
	var entry audit.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds all audit entries matching the filter
func (r *GormAuditEntryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]audit.Entry, error) {
	var entries []audit.Entry
	query := r.db.WithContext(ctx).Model(&audit.Entry{})
	query = applySearch(query, filter, "title", "subject", "description")
	query = applyOrdering(query, filter, auditOrderColumns, "occurred_at")
	query = applyPagination(query, filter)

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates an audit entry
func (r *GormAuditEntryRepository) Save(ctx context.Context, entry *audit.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete deletes an audit entry
func (r *GormAuditEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&audit.Entry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts audit entries matching the filter
func (r *GormAuditEntryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&audit.Entry{})
	query = applySearch(query, filter, "title", "subject", "description")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ audit.EntryRepository = (*GormAuditEntryRepository)(nil)
