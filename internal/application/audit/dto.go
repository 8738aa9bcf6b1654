package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/audit"
)

// CreateEntryRequest represents a request to record a manual audit entry
type CreateEntryRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	ActivityType int    `json:"activity_type" binding:"required,min=1,max=5"`
	Subject      string `json:"subject" binding:"max=200"`
	Description  string `json:"description"`
}

// UpdateEntryRequest represents a request to edit an audit entry's text
type UpdateEntryRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	ActivityType int    `json:"activity_type" binding:"required,min=1,max=5"`
	Subject      string `json:"subject" binding:"max=200"`
	Description  string `json:"description"`
}

// EntryResponse represents an audit entry in API responses
type EntryResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	ActivityType int        `json:"activity_type"`
	Subject      string     `json:"subject"`
	Description  string     `json:"description"`
	OccurredAt   time.Time  `json:"occurred_at"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToEntryResponse converts a domain entry to its response form
func ToEntryResponse(entry *audit.Entry) EntryResponse {
	return EntryResponse{
		ID:           entry.ID,
		Title:        entry.Title,
		ActivityType: entry.ActivityType,
		Subject:      entry.Subject,
		Description:  entry.Description,
		OccurredAt:   entry.OccurredAt,
		UserID:       entry.UserID,
		CreatedAt:    entry.CreatedAt,
	}
}
