package partner

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/landryjoias/crm/internal/domain/shared"
)

var (
	cnpjPattern  = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Client represents a business customer. It is the aggregate root of the
// partner context; opportunities reference it and block its deletion.
type Client struct {
	shared.BaseEntity
	CNPJ      string     `gorm:"type:varchar(18);not null;uniqueIndex" json:"cnpj"`
	TradeName string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"trade_name"`
	Email     string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client
func NewClient(cnpj, tradeName, email string) (*Client, error) {
	cnpj = strings.TrimSpace(cnpj)
	if !cnpjPattern.MatchString(cnpj) {
		return nil, shared.NewDomainError("INVALID_CNPJ", "CNPJ is not valid")
	}
	tradeName = strings.TrimSpace(tradeName)
	if tradeName == "" {
		return nil, shared.NewDomainError("INVALID_TRADE_NAME", "Trade name cannot be empty")
	}
	if len(tradeName) > 200 {
		return nil, shared.NewDomainError("INVALID_TRADE_NAME", "Trade name cannot exceed 200 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		CNPJ:       cnpj,
		TradeName:  tradeName,
		Email:      email,
	}, nil
}

// Update overwrites the client's mutable fields
func (c *Client) Update(tradeName, email string) error {
	tradeName = strings.TrimSpace(tradeName)
	if tradeName == "" {
		return shared.NewDomainError("INVALID_TRADE_NAME", "Trade name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	c.TradeName = tradeName
	c.Email = email
	return nil
}

// LinkUser associates a login account with the client
func (c *Client) LinkUser(userID uuid.UUID) {
	c.UserID = &userID
}
