package identity

import "github.com/google/uuid"

// Actor identifies who is performing an operation. It is threaded
// explicitly through service calls instead of being read from an
// ambient security context.
type Actor struct {
	UserID *uuid.UUID
	Email  string
	Level  AccessLevel
}

// SystemActor returns the actor used for operations with no
// authenticated user behind them
func SystemActor() Actor {
	return Actor{}
}

// IsSystem reports whether the actor is the unauthenticated system actor
func (a Actor) IsSystem() bool {
	return a.UserID == nil
}

// DisplayName returns the actor's email, or "Sistema" for system actors
func (a Actor) DisplayName() string {
	if a.IsSystem() || a.Email == "" {
		return "Sistema"
	}
	return a.Email
}

// Elevated reports whether the actor may perform privileged operations
func (a Actor) Elevated() bool {
	return !a.IsSystem() && a.Level.Elevated()
}
