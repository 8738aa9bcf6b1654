package audit

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// Activity type codes, mirroring the categories the frontend filters by
const (
	ActivityClients       = 1
	ActivityOpportunities = 2
	ActivityProducts      = 3
	ActivityOrders        = 4
	ActivityAccounts      = 5
)

// Entry is one append-only audit record of a business event.
// OccurredAt is set at creation and never mutated afterwards.
type Entry struct {
	shared.BaseEntity
	Title        string     `gorm:"type:varchar(200);not null" json:"title"`
	ActivityType int        `gorm:"not null" json:"activity_type"`
	Subject      string     `gorm:"type:varchar(200);not null" json:"subject"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	OccurredAt   time.Time  `gorm:"not null" json:"occurred_at"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "audit_entries"
}

// NewEntry creates a new audit entry stamped with the current time.
// A nil userID marks a system-initiated event.
func NewEntry(title string, activityType int, subject, description string, userID *uuid.UUID) (*Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Audit title cannot be empty")
	}

	return &Entry{
		BaseEntity:   shared.NewBaseEntity(),
		Title:        title,
		ActivityType: activityType,
		Subject:      subject,
		Description:  description,
		OccurredAt:   time.Now(),
		UserID:       userID,
	}, nil
}

// Update overwrites the entry's descriptive fields. OccurredAt is the
// moment the event happened and stays fixed.
func (e *Entry) Update(title string, activityType int, subject, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Audit title cannot be empty")
	}
	e.Title = title
	e.ActivityType = activityType
	e.Subject = subject
	e.Description = description
	return nil
}
