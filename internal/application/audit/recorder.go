package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/identity"
)

// Recorder writes best-effort audit entries. A failed write never fails
// the business operation that produced it; the failure is logged and
// swallowed.
type Recorder struct {
	entries audit.EntryRepository
	logger  *zap.Logger
}

// NewRecorder creates a new Recorder
func NewRecorder(entries audit.EntryRepository, logger *zap.Logger) *Recorder {
	return &Recorder{
		entries: entries,
		logger:  logger.Named("audit"),
	}
}

// Record persists one audit entry attributed to the actor. System
// actors are recorded with a nil user and the "Sistema" display name.
func (r *Recorder) Record(ctx context.Context, actor identity.Actor, title string, activityType int, subject, description string) {
	entry, err := audit.NewEntry(title, activityType, subject, description, actor.UserID)
	if err != nil {
		r.logger.Warn("dropping malformed audit entry",
			zap.String("title", title),
			zap.Error(err),
		)
		return
	}

	if err := r.entries.Save(ctx, entry); err != nil {
		r.logger.Warn("failed to persist audit entry",
			zap.String("title", title),
			zap.String("subject", subject),
			zap.String("actor", actor.DisplayName()),
			zap.Error(err),
		)
	}
}

// Describe builds the conventional "<event> <detail> por <actor>"
// description used across the services
func Describe(event, detail string, actor identity.Actor) string {
	return fmt.Sprintf("%s %s por %s", event, detail, actor.DisplayName())
}
