package identity

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// AccessLevel represents a user's privilege tier
type AccessLevel string

const (
	AccessLevelAdministrator AccessLevel = "ADMINISTRADOR"
	AccessLevelManager       AccessLevel = "GERENTE"
	AccessLevelStandard      AccessLevel = "PADRAO"
)

// Valid reports whether the access level is a known tier
func (l AccessLevel) Valid() bool {
	switch l {
	case AccessLevelAdministrator, AccessLevelManager, AccessLevelStandard:
		return true
	}
	return false
}

// Elevated reports whether the level may perform privileged operations
// such as deleting orders
func (l AccessLevel) Elevated() bool {
	return l == AccessLevelAdministrator || l == AccessLevelManager
}

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a login account
type User struct {
	shared.BaseEntity
	Email        string      `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	PasswordHash string      `gorm:"type:varchar(100);not null" json:"-"`
	AccessLevel  AccessLevel `gorm:"type:varchar(20);not null;default:'PADRAO'" json:"access_level"`
	ContactID    *uuid.UUID  `gorm:"type:uuid" json:"contact_id,omitempty"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account with a hashed password
func NewUser(email, password string, level AccessLevel) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if !level.Valid() {
		return nil, shared.NewDomainError("INVALID_ACCESS_LEVEL", "Unknown access level: "+string(level))
	}

	user := &User{
		BaseEntity:  shared.NewBaseEntity(),
		Email:       email,
		AccessLevel: level,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangeAccessLevel updates the user's privilege tier
func (u *User) ChangeAccessLevel(level AccessLevel) error {
	if !level.Valid() {
		return shared.NewDomainError("INVALID_ACCESS_LEVEL", "Unknown access level: "+string(level))
	}
	u.AccessLevel = level
	return nil
}
