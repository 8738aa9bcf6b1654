package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// FunnelStage represents an opportunity's position in the sales pipeline
type FunnelStage string

const (
	StageProspecting   FunnelStage = "PROSPECCAO"
	StageQualification FunnelStage = "QUALIFICACAO"
	StageProposal      FunnelStage = "PROPOSTA"
	StageNegotiation   FunnelStage = "NEGOCIACAO"
	StageWon           FunnelStage = "FECHADA"
	StageLost          FunnelStage = "PERDIDA"
)

// Valid reports whether the stage is a known pipeline stage
func (s FunnelStage) Valid() bool {
	switch s {
	case StageProspecting, StageQualification, StageProposal,
		StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// Opportunity represents a potential sale for a client. At most one
// order may reference an opportunity; the order flow enforces this.
type Opportunity struct {
	shared.BaseEntity
	Name               string          `gorm:"type:varchar(200);not null" json:"name"`
	EstimatedValue     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"estimated_value"`
	Stage              FunnelStage     `gorm:"type:varchar(20);not null" json:"stage"`
	EstimatedCloseDate time.Time       `gorm:"type:date" json:"estimated_close_date"`
	ClientID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
}

// TableName returns the table name for GORM
func (Opportunity) TableName() string {
	return "opportunities"
}

// NewOpportunity creates a new sales opportunity
func NewOpportunity(name string, estimatedValue decimal.Decimal, stage FunnelStage, closeDate time.Time, clientID uuid.UUID) (*Opportunity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Opportunity name cannot be empty")
	}
	if !stage.Valid() {
		return nil, shared.NewDomainError("INVALID_STAGE", "Unknown funnel stage: "+string(stage))
	}
	if estimatedValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Estimated value cannot be negative")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Opportunity requires a client")
	}

	return &Opportunity{
		BaseEntity:         shared.NewBaseEntity(),
		Name:               name,
		EstimatedValue:     estimatedValue,
		Stage:              stage,
		EstimatedCloseDate: closeDate,
		ClientID:           clientID,
	}, nil
}

// Update overwrites the opportunity's mutable fields
func (o *Opportunity) Update(name string, estimatedValue decimal.Decimal, stage FunnelStage, closeDate time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Opportunity name cannot be empty")
	}
	if !stage.Valid() {
		return shared.NewDomainError("INVALID_STAGE", "Unknown funnel stage: "+string(stage))
	}
	if estimatedValue.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Estimated value cannot be negative")
	}
	o.Name = name
	o.EstimatedValue = estimatedValue
	o.Stage = stage
	o.EstimatedCloseDate = closeDate
	return nil
}
